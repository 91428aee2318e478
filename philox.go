// Package philox implements the Philox family of counter-based pseudorandom
// generators.
//
// A generator maps a key and a counter to a block of pseudorandom words with
// no other state. Any position of a stream can be computed directly by
// choosing its counter, so independent workers can draw from disjoint parts
// of the counter space without coordination.
//
// Four shapes are provided, named by lane count and word width, each with
// its published multipliers and Weyl increments. They are bit-compatible
// with the Random123 and Boost.Random implementations:
//
//	g := philox.New4(philox.Key4[uint64]{seed, stream})
//	block := g.Generate(philox.Counter4[uint64]{path, step})
package philox

import "github.com/zeebo/errs"

// Error is the class that contains all the errors from this package.
var Error = errs.Class("philox")

// DefaultRounds is the round count used by New2 and New4.
const DefaultRounds = 10

// Word is the set of word types a generator can operate on.
type Word interface {
	uint32 | uint64
}

// Constants holds the multipliers and Weyl increments for one shape. The
// 2 lane shapes only use M0 and W0.
type Constants[W Word] struct {
	M0, M1 W
	W0, W1 W
}

var (
	consts2x32 = Constants[uint32]{
		M0: 0xD256D193,
		W0: 0x9E3779B9,
	}
	consts2x64 = Constants[uint64]{
		M0: 0xD2B74407B1CE6E93,
		W0: 0x9E3779B97F4A7C15,
	}
	consts4x32 = Constants[uint32]{
		M0: 0xD2511F53,
		M1: 0xCD9E8D57,
		W0: 0x9E3779B9, // golden ratio
		W1: 0xBB67AE85, // sqrt(3)-1
	}
	consts4x64 = Constants[uint64]{
		M0: 0xD2E7470EE14C6C93,
		M1: 0xCA5A826395121157,
		W0: 0x9E3779B97F4A7C15, // golden ratio
		W1: 0xBB67AE8584CAA73B, // sqrt(3)-1
	}
)

// table2 returns the 2 lane constants for the word type.
func table2[W Word]() *Constants[W] {
	var c any
	switch any(W(0)).(type) {
	case uint32:
		c = &consts2x32
	case uint64:
		c = &consts2x64
	}
	return c.(*Constants[W])
}

// table4 returns the 4 lane constants for the word type.
func table4[W Word]() *Constants[W] {
	var c any
	switch any(W(0)).(type) {
	case uint32:
		c = &consts4x32
	case uint64:
		c = &consts4x64
	}
	return c.(*Constants[W])
}

// Constants2 returns the constants of the 2 lane shape for the word type.
func Constants2[W Word]() Constants[W] { return *table2[W]() }

// Constants4 returns the constants of the 4 lane shape for the word type.
func Constants4[W Word]() Constants[W] { return *table4[W]() }
