// Package mulhilo computes double width products of unsigned words.
package mulhilo

import (
	"math/bits"
	"unsafe"
)

// Word is the set of word types a product can be computed for.
type Word interface {
	uint32 | uint64
}

// Mul returns the high and low halves of the full product of a and b.
func Mul[W Word](a, b W) (hi, lo W) {
	// the size is known per instantiation, so the compiler drops the
	// branch that does not apply.
	if unsafe.Sizeof(a) == 4 {
		p := uint64(a) * uint64(b)
		return W(p >> 32), W(p)
	}
	h, l := bits.Mul64(uint64(a), uint64(b))
	return W(h), W(l)
}

// Mul32 returns the high and low halves of the 64 bit product of a and b.
func Mul32(a, b uint32) (hi, lo uint32) {
	p := uint64(a) * uint64(b)
	return uint32(p >> 32), uint32(p)
}

// Mul64 returns the high and low halves of the 128 bit product of a and b.
func Mul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// Mul64Limbs is Mul64 computed from 32 bit limbs and partial products.
func Mul64Limbs(a, b uint64) (hi, lo uint64) {
	const mask = 1<<32 - 1

	a0, a1 := a&mask, a>>32
	b0, b1 := b&mask, b>>32

	// each partial product fits in 64 bits.
	p00 := a0 * b0
	p01 := a0 * b1
	p10 := a1 * b0
	p11 := a1 * b1

	// middle column: carries out of it land in the high word.
	mid := p00>>32 + p01&mask + p10&mask

	lo = mid<<32 | p00&mask
	hi = p11 + p01>>32 + p10>>32 + mid>>32
	return hi, lo
}
