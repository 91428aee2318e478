package philox

import (
	"encoding/binary"
	"math"
	"math/bits"
	"math/rand"
	randv2 "math/rand/v2"

	"github.com/zeebo/philox/internal/debug"
)

var (
	_ rand.Source64 = (*Stream)(nil)
	_ randv2.Source = (*Stream)(nil)
)

// Stream reads the blocks of a Philox4x64 generator in counter order as a
// sequence of words. It can be positioned anywhere in the sequence in
// constant time. It is not safe for concurrent use. The zero value applies
// no rounds; construct one with NewStream.
type Stream struct {
	gen T4[uint64]
	ctr Counter4[uint64] // block containing the next word
	idx int              // index of the next word in the block
	ok  bool             // buf holds the block for ctr
	buf Counter4[uint64]
}

// NewStream returns a stream for the key positioned at the zero counter.
func NewStream(key Key4[uint64]) *Stream {
	return &Stream{gen: New4(key)}
}

// NewStreamRounds is like NewStream with an explicit round count.
func NewStreamRounds(key Key4[uint64], rounds uint) *Stream {
	return &Stream{gen: New4Rounds(key, rounds)}
}

// Generator returns the generator backing the stream.
func (s *Stream) Generator() T4[uint64] { return s.gen }

// Seed rekeys the stream with {seed, 0} and rewinds it to the zero counter.
func (s *Stream) Seed(seed int64) {
	s.gen.SetKey(Key4[uint64]{uint64(seed), 0})
	s.Seek(Counter4[uint64]{})
}

// Seek positions the stream at the first word of the block for ctr.
func (s *Stream) Seek(ctr Counter4[uint64]) {
	s.ctr, s.idx, s.ok = ctr, 0, false
}

// Position returns the block counter and the index within the block of the
// next word.
func (s *Stream) Position() (Counter4[uint64], int) { return s.ctr, s.idx }

// Advance skips the next n words.
func (s *Stream) Advance(n uint64) {
	lo, carry := bits.Add64(n, uint64(s.idx), 0)
	if blocks := lo>>2 | carry<<62; blocks > 0 {
		s.ctr.Add(blocks)
		s.ok = false
	}
	s.idx = int(lo & 3)
}

// Uint64 returns the next word of the stream.
func (s *Stream) Uint64() uint64 {
	if !s.ok {
		s.buf, s.ok = s.gen.Generate(s.ctr), true
	}
	debug.Assert("stream index in block", func() bool { return s.idx < len(s.buf) })

	v := s.buf[s.idx]
	s.idx++
	if s.idx == len(s.buf) {
		s.ctr.Add(1)
		s.idx, s.ok = 0, false
	}
	return v
}

// Uint32 returns the high half of the next word.
func (s *Stream) Uint32() uint32 { return uint32(s.Uint64() >> 32) }

// Int63 returns a non-negative int64 from the high bits of the next word.
func (s *Stream) Int63() int64 { return int64(s.Uint64() >> 1) }

// Float64 returns a float uniformly in [0, 1) with 53 bits of precision.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Uint64n returns an unbiased uint64 in [0, n). It panics if n is zero.
func (s *Stream) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("philox: invalid argument to Uint64n")
	}
	if n&(n-1) == 0 { // power of two, can mask
		return s.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}

// NormFloat64 returns a standard normal variate using the Box-Muller
// transform. It consumes two words.
func (s *Stream) NormFloat64() float64 {
	u1 := 1 - s.Float64() // (0, 1] so the log is finite
	u2 := s.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

const (
	streamMagic = "phx4"
	streamSize  = (0 +
		4 + // magic
		4 + // rounds
		2*8 + // key
		4*8 + // counter
		1 + // index
		0)
)

// MarshalBinary encodes the key, round count and position of the stream.
func (s *Stream) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, streamSize)
	buf = append(buf, streamMagic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.gen.rounds))
	for _, k := range s.gen.key {
		buf = binary.BigEndian.AppendUint64(buf, k)
	}
	for _, c := range s.ctr {
		buf = binary.BigEndian.AppendUint64(buf, c)
	}
	buf = append(buf, byte(s.idx))
	return buf, nil
}

// UnmarshalBinary restores a stream encoded with MarshalBinary.
func (s *Stream) UnmarshalBinary(data []byte) error {
	if len(data) != streamSize {
		return Error.New("invalid stream state size: %d != %d", len(data), streamSize)
	}
	if string(data[:4]) != streamMagic {
		return Error.New("invalid stream state magic: %q", data[:4])
	}
	data = data[4:]

	rounds := binary.BigEndian.Uint32(data[0:4])
	data = data[4:]

	var key Key4[uint64]
	for i := range key {
		key[i] = binary.BigEndian.Uint64(data[8*i:])
	}
	data = data[8*len(key):]

	var ctr Counter4[uint64]
	for i := range ctr {
		ctr[i] = binary.BigEndian.Uint64(data[8*i:])
	}
	data = data[8*len(ctr):]

	idx := int(data[0])
	if idx >= len(ctr) {
		return Error.New("invalid word index: %d", idx)
	}

	*s = Stream{
		gen: New4Rounds(key, uint(rounds)),
		ctr: ctr,
		idx: idx,
	}
	return nil
}
