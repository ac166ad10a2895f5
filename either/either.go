package either

/*
module Either exposing (Either(Left,Right), map, mapLeft, fold)

An Either is a value carrying one of two possible types. By convention the
Left variant carries the exceptional case and the Right variant carries the
expected one ("right" also meaning "correct").
*/

// Either holds either a value of type L or one of type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](x L) Either[L, R] {
	return either[L, R]{left: x}
}

func Right[L, R any](x R) Either[L, R] {
	return either[L, R]{right: x, isRight: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

// Map applies f to the Right value, leaving a Left untouched.
func Map[L, R, S any](f func(R) S, x Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[L, S](l)
	case m.Right(&r):
	}
	return Right[L](f(r))
}

// MapLeft applies f to the Left value, leaving a Right untouched.
func MapLeft[L, R, M any](f func(L) M, x Either[L, R]) Either[M, R] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[M, R](f(l))
	case m.Right(&r):
	}
	return Right[M](r)
}

// Fold collapses an Either into a single value by applying onLeft or onRight,
// whichever variant is present.
func Fold[L, R, T any](onLeft func(L) T, onRight func(R) T, x Either[L, R]) T {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(v *L) Matcher[L, R] {
	if !em.e.isRight {
		*v = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(v *R) Matcher[L, R] {
	if em.e.isRight {
		*v = em.e.right
		return em
	}
	return nil
}
