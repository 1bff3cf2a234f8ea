// SPDX-License-Identifier: GPL-3.0-or-later

package chain

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrInvalidTransform indicates that a [*Composable] was constructed
// from a nil transformation.
var ErrInvalidTransform = errors.New("chain: transform is not callable")

// Composable wraps a single [Func] so it can be chained with other
// transformations and seeded with literal values.
//
// A Composable is immutable once constructed: [Then], [Apply], and
// [Composable.WithDoc] always return a new Composable and never modify
// an existing one. Because there is no mutable state, invoking the same
// Composable concurrently is safe as long as the wrapped transformation
// itself is.
//
// Construct using [New].
type Composable[A, B any] struct {
	// fn is the wrapped transformation.
	fn Func[A, B]

	// name identifies the wrapped transformation for introspection.
	name string

	// doc optionally describes the wrapped transformation.
	doc string
}

var _ Func[int, int] = &Composable[int, int]{}

// New wraps a [Func] into a [*Composable].
//
// The composable's name is derived from the wrapped transformation so
// that introspection roughly matches inspecting the function directly.
//
// Returns [ErrInvalidTransform] when fn is nil (including a typed nil
// such as a nil [FuncAdapter]).
func New[A, B any](fn Func[A, B]) (*Composable[A, B], error) {
	if isNilTransform(fn) {
		return nil, ErrInvalidTransform
	}
	return &Composable[A, B]{fn: fn, name: transformName(fn)}, nil
}

// Call implements [Func] by invoking the wrapped transformation with
// the given input. Whatever the transformation returns, value or error,
// is returned unchanged.
func (c *Composable[A, B]) Call(ctx context.Context, input A) (B, error) {
	return c.fn.Call(ctx, input)
}

// Name returns the name of the wrapped transformation.
func (c *Composable[A, B]) Name() string {
	return c.name
}

// Doc returns the doc string attached with [Composable.WithDoc], if any.
func (c *Composable[A, B]) Doc() string {
	return c.doc
}

// WithDoc returns a copy of this [*Composable] carrying the given doc
// string. The receiver is left unmodified.
func (c *Composable[A, B]) WithDoc(doc string) *Composable[A, B] {
	return &Composable[A, B]{fn: c.fn, name: c.name, doc: doc}
}

// isNilTransform reports whether fn is nil, either as an interface
// value or as a typed nil function or pointer.
func isNilTransform(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// transformName derives a human-readable name for a transformation.
//
// Composables report their own name. Function values (including
// [FuncAdapter]) resolve through the runtime symbol table. Everything
// else falls back to its type name.
func transformName(fn any) string {
	if named, ok := fn.(interface{ Name() string }); ok {
		return named.Name()
	}
	v := reflect.ValueOf(fn)
	if v.Kind() == reflect.Func {
		if sym := runtime.FuncForPC(v.Pointer()); sym != nil {
			name := sym.Name()
			return name[strings.LastIndexByte(name, '/')+1:]
		}
	}
	return fmt.Sprintf("%T", fn)
}
