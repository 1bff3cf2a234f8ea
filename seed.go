// SPDX-License-Identifier: GPL-3.0-or-later

package chain

import "context"

// Thunk is a zero-argument deferred computation, resolved on demand.
//
// Thunks let a pipeline seed carry "compute this when the pipeline
// starts" elements (default values, lazily read settings) next to plain
// data. This is a convenience for value injection at seed time, not a
// general laziness mechanism: each thunk is resolved exactly once,
// before the pipeline runs.
type Thunk[T any] func() T

// Value is one element of a pipeline seed: either a literal of type T
// or a deferred [Thunk] producing one.
//
// Construct using [Lit] or [Deferred]. The zero Value resolves to the
// zero value of T.
type Value[T any] struct {
	literal T
	thunk   Thunk[T]
}

// Lit returns a [Value] holding a literal.
func Lit[T any](v T) Value[T] {
	return Value[T]{literal: v}
}

// Deferred returns a [Value] holding a [Thunk] resolved at seed time.
func Deferred[T any](th Thunk[T]) Value[T] {
	return Value[T]{thunk: th}
}

// Resolve returns the literal, or the thunk's result when this [Value]
// is deferred.
func (v Value[T]) Resolve() T {
	if v.thunk != nil {
		return v.thunk()
	}
	return v.literal
}

// Pipe feeds a scalar seed into a transformation.
//
// This is the "literal at the head of a chain" form of invocation and is
// exactly equivalent to fn.Call(ctx, seed).
func Pipe[A, B any](ctx context.Context, seed A, fn Func[A, B]) (B, error) {
	return fn.Call(ctx, seed)
}

// PipeSeq feeds an ordered sequence seed into a transformation.
//
// Each element is resolved first (replacing every [Deferred] element by
// its thunk's result, passing [Lit] elements through unchanged), then
// the whole resolved slice is passed as the single argument to fn.
//
// An empty or nil seed is valid and yields an empty, non-nil slice.
func PipeSeq[T, B any](ctx context.Context, seed []Value[T], fn Func[[]T, B]) (B, error) {
	resolved := make([]T, 0, len(seed))
	for _, elem := range seed {
		resolved = append(resolved, elem.Resolve())
	}
	return fn.Call(ctx, resolved)
}

// PipeMap feeds a mapping seed into a transformation.
//
// Like [PipeSeq] but applied to the map's values; keys are untouched.
// The whole resolved map is passed as the single argument to fn.
//
// An empty or nil seed is valid and yields an empty, non-nil map.
func PipeMap[K comparable, V, B any](ctx context.Context, seed map[K]Value[V], fn Func[map[K]V, B]) (B, error) {
	resolved := make(map[K]V, len(seed))
	for key, elem := range seed {
		resolved[key] = elem.Resolve()
	}
	return fn.Call(ctx, resolved)
}
