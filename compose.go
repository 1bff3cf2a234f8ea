//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/nop
//

package chain

import "context"

// Then chains two transformations into a pipeline, applied strictly
// left to right: the output of first becomes the input to next. If
// first returns an error, next is not called and the error is returned
// unchanged.
//
// Then always allocates a new [*Composable] and leaves both operands
// untouched, so previously built pipelines keep working after further
// chaining. Composition is associative: Then(Then(a, b), c) and
// Then(a, Then(b, c)) apply a, b, c in the same order and produce the
// same results.
func Then[A, B, C any](first Func[A, B], next Func[B, C]) *Composable[A, C] {
	fn := FuncAdapter[A, C](func(ctx context.Context, input A) (C, error) {
		intermediate, err := first.Call(ctx, input)
		if err != nil {
			var zero C
			return zero, err
		}
		return next.Call(ctx, intermediate)
	})
	return &Composable[A, C]{
		fn:   fn,
		name: transformName(first) + " | " + transformName(next),
	}
}

// Then3 chains three transformations.
func Then3[A, B, C, D any](op1 Func[A, B], op2 Func[B, C], op3 Func[C, D]) *Composable[A, D] {
	return Then(op1, Then(op2, op3))
}

// Then4 chains four transformations.
func Then4[A, B, C, D, E any](op1 Func[A, B], op2 Func[B, C], op3 Func[C, D], op4 Func[D, E]) *Composable[A, E] {
	return Then(op1, Then3(op2, op3, op4))
}

// Then5 chains five transformations.
func Then5[A, B, C, D, E, F any](
	op1 Func[A, B], op2 Func[B, C], op3 Func[C, D], op4 Func[D, E], op5 Func[E, F]) *Composable[A, F] {
	return Then(op1, Then4(op2, op3, op4, op5))
}

// Apply binds a fixed input to a [Func], returning a [*Composable] that
// takes [Unit] instead.
//
// This is useful for currying a pipeline that requires an input value
// into one that can be used where a [Func[Unit, B]] is expected.
func Apply[A, B any](fn Func[A, B], input A) *Composable[Unit, B] {
	return ApplyIgnoring[Unit](fn, input)
}

// ApplyIgnoring binds a fixed input to a [Func], returning a
// [*Composable] that accepts an argument of type X and DISCARDS it,
// always evaluating fn with the bound input.
//
// This reproduces the behavior of operator-overloaded pipelines where
// chaining with a plain value substitutes that value for the call
// argument. The silently discarded argument is a well-known footgun:
// prefer [Apply], which makes the absence of a meaningful input explicit
// in the type, unless you are porting code that relies on the discard.
func ApplyIgnoring[X, A, B any](fn Func[A, B], input A) *Composable[X, B] {
	adapted := FuncAdapter[X, B](func(ctx context.Context, _ X) (B, error) {
		return fn.Call(ctx, input)
	})
	return &Composable[X, B]{fn: adapted, name: transformName(fn)}
}

// ConstFunc returns a [Func] that always returns the given value.
//
// This lifts a pure value into the [Func] world, creating a
// [Func[Unit, B]] that ignores its input and returns the constant value.
func ConstFunc[B any](value B) Func[Unit, B] {
	return &constFunc[B]{value}
}

type constFunc[B any] struct {
	value B
}

func (c *constFunc[B]) Call(ctx context.Context, _ Unit) (B, error) {
	return c.value, nil
}
