/*
Package memo provides memoization for pure functions.

Results are cached in a persistent hashmap; the memoizer publishes new cache
incarnations through an atomic compare-and-swap, so memoized functions are
safe for concurrent use without locks. Readers always see a consistent cache
snapshot.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memo

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/fun/persistent/hashmap"
	"golang.org/x/sync/singleflight"
)

// Of returns a memoized version of f. The argument function must be pure:
// repeated calls with equal arguments have to produce equal results.
//
// Concurrent callers may compute the same uncached argument redundantly;
// whichever result is published first wins. Use OfErr if computations are
// expensive enough that duplicate work matters.
func Of[K comparable, V any](f func(K) V) func(K) V {
	var cache atomic.Value
	empty := hashmap.Immutable[K, V]()
	cache.Store(&empty)
	return func(k K) V {
		m := cache.Load().(*hashmap.Map[K, V])
		if v, ok := m.Get(k); ok {
			return v
		}
		v := f(k)
		for {
			m = cache.Load().(*hashmap.Map[K, V])
			if w, ok := m.Get(k); ok { // someone else was faster
				return w
			}
			next := m.With(k, v)
			if cache.CompareAndSwap(m, &next) {
				return v
			}
		}
	}
}

// OfErr returns a memoized version of a fallible function. Successful
// results are cached, errors are not: a later call with the same argument
// retries the computation. Concurrent calls for the same uncached argument
// are collapsed into a single execution.
func OfErr[K comparable, V any](f func(K) (V, error)) func(K) (V, error) {
	var cache atomic.Value
	empty := hashmap.Immutable[K, V]()
	cache.Store(&empty)
	group := &singleflight.Group{}
	return func(k K) (V, error) {
		if v, ok := cache.Load().(*hashmap.Map[K, V]).Get(k); ok {
			return v, nil
		}
		v, err, _ := group.Do(fmt.Sprint(k), func() (interface{}, error) {
			if w, ok := cache.Load().(*hashmap.Map[K, V]).Get(k); ok {
				return w, nil
			}
			w, err := f(k)
			if err != nil {
				return nil, err
			}
			for {
				old := cache.Load().(*hashmap.Map[K, V])
				if prev, ok := old.Get(k); ok {
					return prev, nil
				}
				next := old.With(k, w)
				if cache.CompareAndSwap(old, &next) {
					return w, nil
				}
			}
		})
		if err != nil {
			var none V
			return none, err
		}
		return v.(V), nil
	}
}
