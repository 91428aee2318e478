package philox

import "github.com/zeebo/philox/internal/mulhilo"

// T2 is a 2 lane Philox generator. It holds its key by value, so copies are
// independent. The zero value performs no rounds; use New2 or New2Rounds.
type T2[W Word] struct {
	key    Key2[W]
	rounds uint
}

// Philox2x32 is the 2 lane generator on 32 bit words.
type Philox2x32 = T2[uint32]

// Philox2x64 is the 2 lane generator on 64 bit words.
type Philox2x64 = T2[uint64]

// New2 returns a 2 lane generator with the given key and DefaultRounds.
func New2[W Word](key Key2[W]) T2[W] {
	return New2Rounds(key, DefaultRounds)
}

// New2Rounds returns a 2 lane generator with the given key and round count.
func New2Rounds[W Word](key Key2[W], rounds uint) T2[W] {
	return T2[W]{key: key, rounds: rounds}
}

// Key returns a copy of the key.
func (p T2[W]) Key() Key2[W] { return p.key }

// SetKey replaces the key. It must not race with other calls on p.
func (p *T2[W]) SetKey(key Key2[W]) { p.key = key }

// Rounds returns the number of rounds applied by Generate.
func (p T2[W]) Rounds() uint { return p.rounds }

// Equal reports if p and q have the same key and round count.
func (p T2[W]) Equal(q T2[W]) bool {
	return p.key == q.key && p.rounds == q.rounds
}

// Generate returns the block for the counter. It does not modify p and is
// safe to call concurrently.
func (p T2[W]) Generate(ctr Counter2[W]) Counter2[W] {
	c := table2[W]()
	m0, w0 := c.M0, c.W0

	key := p.key
	for r := uint(0); r < p.rounds; r++ {
		hi, lo := mulhilo.Mul(m0, ctr[0])
		ctr = Counter2[W]{hi ^ key[0] ^ ctr[1], lo}
		key[0] += w0
	}
	return ctr
}
