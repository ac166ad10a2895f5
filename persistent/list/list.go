/*
Package list implements an immutable persistent singly-linked list, the
classic cons list of functional languages.

Every list shares its tail with all lists derived from it: Cons allocates a
single cell and leaves the receiver untouched. A nil *List is the empty list
and ready to use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fun/maybe"
)

// List is an immutable cons list. A nil *List is the empty list.
type List[T any] struct {
	first T
	rest  *List[T]
}

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return nil
}

// Of builds a list from its arguments, first argument first.
func Of[T any](items ...T) *List[T] {
	var l *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

// Cons returns a new list with x prepended. O(1), the receiver is shared as
// the tail of the result.
func (l *List[T]) Cons(x T) *List[T] {
	return &List[T]{first: x, rest: l}
}

// Head returns the first element, or Nothing for the empty list.
func (l *List[T]) Head() maybe.Maybe[T] {
	if l == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.first)
}

// Tail returns the list without its first element. The tail of the empty
// list is the empty list.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// IsEmpty is true for the empty list.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Len returns the number of elements. O(n).
func (l *List[T]) Len() int {
	n := 0
	for ; l != nil; l = l.rest {
		n++
	}
	return n
}

// Reverse returns a new list with the elements in opposite order.
func (l *List[T]) Reverse() *List[T] {
	var r *List[T]
	for ; l != nil; l = l.rest {
		r = r.Cons(l.first)
	}
	return r
}

// Each calls f for every element front to back, stopping early if f returns
// false.
func (l *List[T]) Each(f func(value T) bool) {
	for ; l != nil; l = l.rest {
		if !f(l.first) {
			return
		}
	}
}

// Slice returns the list's elements as a freshly allocated Go slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	l.Each(func(value T) bool {
		s = append(s, value)
		return true
	})
	return s
}

// Fold reduces a list front to back, starting with zero.
func Fold[T, A any](l *List[T], f func(A, T) A, zero A) A {
	acc := zero
	l.Each(func(value T) bool {
		acc = f(acc, value)
		return true
	})
	return acc
}

// Map returns a new list with f applied to every element.
func Map[T, S any](f func(T) S, l *List[T]) *List[S] {
	var r *List[S]
	l.Each(func(value T) bool {
		r = r.Cons(f(value))
		return true
	})
	return r.Reverse()
}

// Filter returns a new list keeping only elements for which pred is true.
func Filter[T any](pred func(T) bool, l *List[T]) *List[T] {
	var r *List[T]
	l.Each(func(value T) bool {
		if pred(value) {
			r = r.Cons(value)
		}
		return true
	})
	return r.Reverse()
}

func (l *List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	first := true
	l.Each(func(value T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", value))
		return true
	})
	b.WriteByte(')')
	return b.String()
}
