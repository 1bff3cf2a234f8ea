//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/nop
//

package chain

import "context"

// Func is a unary transformation that accepts an input and returns a result.
//
// Func instances can be composed using [Then], [Then3], etc. to create
// type-safe pipelines where the output of one transformation flows to the
// input of the next.
//
// Transformations must be pure functions of their single argument as far
// as the combinator is concerned: any side effect (file I/O, logging) is
// the transformation's own business and invisible to composition.
type Func[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures when you need
// custom behavior that doesn't fit the existing primitives.
type FuncAdapter[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}
