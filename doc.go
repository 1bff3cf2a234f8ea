// SPDX-License-Identifier: GPL-3.0-or-later

// Package chain provides a minimal combinator for composing unary
// transformations into eager, left-to-right pipelines.
//
// # Core Abstraction
//
// The package is built around a single interface:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// Each Func represents one transformation with exactly one input and one
// output. This design enables type-safe composition via [Then], where the
// compiler verifies that outputs match inputs across pipeline stages and
// rejects any attempt to pass more (or fewer) than one argument.
//
// # Composition Utilities
//
//   - [New]: wrap a [Func] into an immutable [*Composable] carrying
//     name and doc metadata for introspection
//   - [Then] (and [Then3] through [Then5]): chain transformations into
//     pipelines, applied strictly left to right
//   - [FuncAdapter]: wrap a closure as a [Func] for ad-hoc behavior
//   - [Apply]: bind a fixed input to a [Func]
//   - [ApplyIgnoring]: like [Apply], but the result accepts and discards
//     an argument of an arbitrary type (compatibility shim, see its doc)
//   - [ConstFunc]: lift a pure value into a [Func]
//
// # Seeding Pipelines
//
// A pipeline can be started from a literal value instead of being called
// as a function:
//
//   - [Pipe]: feed a scalar seed; identical to calling the pipeline
//   - [PipeSeq]: feed a slice of [Value] elements; each deferred
//     [Thunk] is resolved once, then the whole slice is passed as the
//     single argument
//   - [PipeMap]: like [PipeSeq] for maps; keys are untouched
//
// Thunks are explicit: wrap deferred elements with [Deferred] and plain
// elements with [Lit]. There is no callable-or-not runtime probing and no
// recursion into nested containers.
//
// # Error Propagation
//
// The combinator has no error policy of its own. The first stage that
// fails aborts evaluation and its error is returned to the caller
// unchanged: no wrapping, no retry, no cleanup. Stages that acquire
// resources are responsible for releasing them before returning an error.
//
// # Observability
//
// The combinator itself never logs. Pipeline stages built on top of it
// (see the contacts package) support structured logging via [SLogger]
// (compatible with [log/slog]) and error classification via
// [ErrClassifier]; both default to no-ops.
//
// Use [NewSpanID] to generate a unique, time-ordered identifier (UUIDv7)
// for each pipeline run, then attach it to the logger with
// [*slog.Logger.With] so all log entries from that run share the same
// spanID.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: composition never modifies the
// context it receives, and the combinator itself never blocks. The caller
// controls timeouts externally via [context.WithTimeout] or similar; a
// stage that performs I/O is expected to honor the context it is given.
//
// # Design Boundaries
//
// This package intentionally provides only the composition primitive.
// The following are out of scope and should be implemented by
// higher-level packages:
//
//   - Branching and multi-argument composition
//   - Parallel execution (fan-out, racing)
//   - Retry and backoff logic
//   - Lazy, generator-style streaming
//
// These concerns introduce multiple success/failure modes, which would
// compromise the compositional simplicity of the primitive.
package chain
