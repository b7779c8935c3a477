package arrayfn

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type (

	// Number is the set of element types accepted by the numeric operations.
	Number interface {
		constraints.Integer | constraints.Float
	}

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be kept.
	Predicate[T any] func(item T) bool

	// ReduceFunc folds item into the accumulator and returns the new accumulator.
	ReduceFunc[T, Acc any] func(acc Acc, item T) Acc
)

// Map transforms each input value using fn and returns a new slice holding
// the mapped values, in input order.
//
// The result always has the same length as xs and is never nil.
func Map[In, Out any](xs []In, fn MapFunc[In, Out]) []Out {
	out := make([]Out, len(xs))
	for i, in := range xs {
		out[i] = fn(in)
	}
	return out
}

// Filter returns a new slice holding only the values for which predicate
// returns true. Relative order is preserved.
//
// The result is never nil, even when nothing matches.
func Filter[T any](xs []T, predicate Predicate[T]) []T {
	out := make([]T, 0, len(xs))
	for _, in := range xs {
		if predicate(in) {
			out = append(out, in)
		}
	}
	return out
}

// Reduce folds xs from left to right, starting with init.
//
// For example, to sum values:
//
//	total := arrayfn.Reduce(xs, 0, func(acc, v int) int {
//	    return acc + v
//	})
func Reduce[T, Acc any](xs []T, init Acc, fn ReduceFunc[T, Acc]) Acc {
	acc := init
	for _, in := range xs {
		acc = fn(acc, in)
	}
	return acc
}

// Every reports whether predicate holds for all values of xs.
// It is vacuously true for an empty slice.
func Every[T any](xs []T, predicate Predicate[T]) bool {
	for _, in := range xs {
		if !predicate(in) {
			return false
		}
	}
	return true
}

// Count returns the number of values for which predicate returns true.
func Count[T any](xs []T, predicate Predicate[T]) int {
	n := 0
	for _, in := range xs {
		if predicate(in) {
			n++
		}
	}
	return n
}

// Sum adds up all values of xs. The sum of an empty slice is 0.
func Sum[T Number](xs []T) T {
	return Reduce(xs, T(0), func(acc, v T) T {
		return acc + v
	})
}

// IndexFunc returns the index of the first value satisfying predicate,
// or -1 if there is none.
func IndexFunc[T any](xs []T, predicate Predicate[T]) int {
	for i, in := range xs {
		if predicate(in) {
			return i
		}
	}
	return -1
}

// InsertAt returns a new slice equal to xs with v inserted at position i.
// Values at and after i are shifted right by one.
//
// InsertAt panics if i is outside [0, len(xs)].
func InsertAt[T any](xs []T, i int, v T) []T {
	if i < 0 || i > len(xs) {
		panic(fmt.Sprintf("arrayfn.InsertAt: index %d out of range [0, %d]", i, len(xs)))
	}

	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, v)
	out = append(out, xs[i:]...)
	return out
}
