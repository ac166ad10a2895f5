package result

import (
	"github.com/npillmayer/fun/maybe"
)

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2, map3, map4, map5

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// FromErr wraps Go's value-error return idiom: FromErr(f()) is Ok the
// value if err is nil, Err otherwise.
func FromErr[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return x
	case m.Err(&err):
	}
	return Err[T](f(err))
}

func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&err):
	}
	return maybe.Nothing[T]()
}

func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	case m.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
