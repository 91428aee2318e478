package philox

import (
	"math/bits"
	"unsafe"
)

// Counter2 is the input and output block of a 2 lane generator.
type Counter2[W Word] [2]W

// Counter4 is the input and output block of a 4 lane generator.
type Counter4[W Word] [4]W

// Key2 is the key of a 2 lane generator.
type Key2[W Word] [1]W

// Key4 is the key of a 4 lane generator.
type Key4[W Word] [2]W

// Add advances the counter by n, treating lane 0 as the least significant
// word. It wraps around on overflow.
func (c *Counter2[W]) Add(n uint64) { addWords(c[:], n) }

// Add advances the counter by n, treating lane 0 as the least significant
// word. It wraps around on overflow.
func (c *Counter4[W]) Add(n uint64) { addWords(c[:], n) }

// addWords adds n into the little endian multi word integer in c.
func addWords[W Word](c []W, n uint64) {
	for i := range c {
		if n == 0 {
			return
		}
		if unsafe.Sizeof(c[i]) == 8 {
			s, carry := bits.Add64(uint64(c[i]), n, 0)
			c[i], n = W(s), carry
		} else {
			s := uint64(c[i]) + n&(1<<32-1)
			c[i], n = W(s), n>>32+s>>32
		}
	}
}
