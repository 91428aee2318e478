package philox

import "github.com/zeebo/philox/internal/mulhilo"

// T4 is a 4 lane Philox generator. It holds its key by value, so copies are
// independent. The zero value performs no rounds; use New4 or New4Rounds.
type T4[W Word] struct {
	key    Key4[W]
	rounds uint
}

// Philox4x32 is the 4 lane generator on 32 bit words.
type Philox4x32 = T4[uint32]

// Philox4x64 is the 4 lane generator on 64 bit words.
type Philox4x64 = T4[uint64]

// New4 returns a 4 lane generator with the given key and DefaultRounds.
func New4[W Word](key Key4[W]) T4[W] {
	return New4Rounds(key, DefaultRounds)
}

// New4Rounds returns a 4 lane generator with the given key and round count.
func New4Rounds[W Word](key Key4[W], rounds uint) T4[W] {
	return T4[W]{key: key, rounds: rounds}
}

// Key returns a copy of the key.
func (p T4[W]) Key() Key4[W] { return p.key }

// SetKey replaces the key. It must not race with other calls on p.
func (p *T4[W]) SetKey(key Key4[W]) { p.key = key }

// Rounds returns the number of rounds applied by Generate.
func (p T4[W]) Rounds() uint { return p.rounds }

// Equal reports if p and q have the same key and round count.
func (p T4[W]) Equal(q T4[W]) bool {
	return p.key == q.key && p.rounds == q.rounds
}

// Generate returns the block for the counter. It does not modify p and is
// safe to call concurrently.
func (p T4[W]) Generate(ctr Counter4[W]) Counter4[W] {
	c := table4[W]()
	m0, m1, w0, w1 := c.M0, c.M1, c.W0, c.W1

	key := p.key
	for r := uint(0); r < p.rounds; r++ {
		hi0, lo0 := mulhilo.Mul(m0, ctr[0])
		hi1, lo1 := mulhilo.Mul(m1, ctr[2])
		ctr = Counter4[W]{
			hi1 ^ ctr[1] ^ key[0], lo1,
			hi0 ^ ctr[3] ^ key[1], lo0,
		}
		key[0] += w0
		key[1] += w1
	}
	return ctr
}
