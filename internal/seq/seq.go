package seq

import "iter"

// Integer constrains sequence operations to built-in integer types,
// including named types whose underlying type is an integer.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// From returns a restartable view over s. Iterating the result walks
// the slice from the start each time.
func From[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materializes a sequence into a fresh slice. The result is
// never nil, so an empty sequence collects to an empty slice.
func Collect[T any](s iter.Seq[T]) []T {
	out := []T{}
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Filter returns a lazy view of s containing only the elements for
// which keep returns true, in source order.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map returns a lazy view of s with fn applied to each element. The
// view has the same length and order as the source.
func Map[T, U any](s iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Sum accumulates a sequence left to right starting at zero. The empty
// sequence sums to zero. Overflow wraps per Go integer semantics.
func Sum[T Integer](s iter.Seq[T]) T {
	var total T
	for v := range s {
		total += v
	}
	return total
}

// Even reports whether n is divisible by two. Zero and negative even
// values count as even.
func Even[T Integer](n T) bool {
	return n%2 == 0
}

// Square returns n * n. Wraps on overflow.
func Square[T Integer](n T) T {
	return n * n
}

// Evens returns the even-valued subsequence of s in original order.
func Evens[T Integer](s []T) []T {
	return Collect(Filter(From(s), Even[T]))
}

// Squares returns a new slice with each element of s squared.
func Squares[T Integer](s []T) []T {
	return Collect(Map(From(s), Square[T]))
}

// Total sums a slice in a single pass.
func Total[T Integer](s []T) T {
	return Sum(From(s))
}
