/*
Package lens implements functional references into immutable records.

A lens pairs a getter with a non-destructive setter: Set does not modify the
record it is given but returns an updated copy. Composing lenses gives
updates of deeply nested fields without hand-written copy chains.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lens

// Lens focuses on a part A of a whole S.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Of constructs a lens from a getter and a non-destructive setter.
func Of[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Over applies f to the focused part and returns the updated whole.
func (l Lens[S, A]) Over(s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// Compose chains two lenses into one focusing through both.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}
