/*
Package hashmap implements an immutable persistent map, designed for use-cases
similar to Go maps.

The map is backed by a hash array mapped trie (HAMT): keys are located by the
digits of their hash code, five bits per level, in bitmap-compressed branch
nodes. Each “modification” (insertion, replacement or deletion) path-copies
the affected branch only and shares all untouched branches with the original,
which therefore stays valid and unchanged.

Immutable maps are inherently concurrency-safe: readers may share incarnations
across goroutines without synchronization while writers derive new ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fun.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("fun.hashmap")
}
