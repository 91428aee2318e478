package philox

import (
	"fmt"
	"math"
	"unsafe"
)

// Config describes a generator shape chosen at run time.
type Config struct {
	// Lanes is the number of words in a block. It must be 2 or 4.
	Lanes int

	// Width is the bit width of a word. It must be 32 or 64.
	Width int

	// Rounds is the number of rounds. Zero means DefaultRounds.
	Rounds uint
}

// Validate checks if the configuration describes a supported shape.
func (c Config) Validate() error {
	if c.Lanes != 2 && c.Lanes != 4 {
		return Error.New("unsupported lane count: %d", c.Lanes)
	}
	if c.Width != 32 && c.Width != 64 {
		return Error.New("unsupported word width: %d", c.Width)
	}
	return nil
}

// String returns the shape in the usual lanes x width notation.
func (c Config) String() string {
	return fmt.Sprintf("%dx%d-%d", c.Lanes, c.Width, c.rounds())
}

func (c Config) rounds() uint {
	if c.Rounds == 0 {
		return DefaultRounds
	}
	return c.Rounds
}

// Block is a generator whose shape was chosen at run time. Words are carried
// in uint64s regardless of the configured width.
type Block interface {
	// Lanes returns the number of words in a block.
	Lanes() int

	// Width returns the bit width of each word.
	Width() int

	// Generate writes the block for ctr into out. Both must have exactly
	// Lanes words. Counter words wider than Width are truncated.
	Generate(out, ctr []uint64)
}

// NewBlock returns a Block for the configuration with the given key. The key
// must have Lanes/2 words, each fitting in Width bits.
func NewBlock(c Config, key []uint64) (Block, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(key) != c.Lanes/2 {
		return nil, Error.New("key has %d words: want %d", len(key), c.Lanes/2)
	}
	if c.Width == 32 {
		for i, k := range key {
			if k > math.MaxUint32 {
				return nil, Error.New("key word %d does not fit in 32 bits: %#x", i, k)
			}
		}
	}

	switch {
	case c.Lanes == 2 && c.Width == 32:
		return block2[uint32]{New2Rounds(Key2[uint32]{uint32(key[0])}, c.rounds())}, nil
	case c.Lanes == 2 && c.Width == 64:
		return block2[uint64]{New2Rounds(Key2[uint64]{key[0]}, c.rounds())}, nil
	case c.Lanes == 4 && c.Width == 32:
		return block4[uint32]{New4Rounds(Key4[uint32]{uint32(key[0]), uint32(key[1])}, c.rounds())}, nil
	default:
		return block4[uint64]{New4Rounds(Key4[uint64]{key[0], key[1]}, c.rounds())}, nil
	}
}

type block2[W Word] struct{ g T2[W] }

func (b block2[W]) Lanes() int { return 2 }
func (b block2[W]) Width() int { return int(unsafe.Sizeof(W(0))) * 8 }

func (b block2[W]) Generate(out, ctr []uint64) {
	if len(out) != 2 || len(ctr) != 2 {
		panic("philox: block length mismatch")
	}
	r := b.g.Generate(Counter2[W]{W(ctr[0]), W(ctr[1])})
	out[0], out[1] = uint64(r[0]), uint64(r[1])
}

type block4[W Word] struct{ g T4[W] }

func (b block4[W]) Lanes() int { return 4 }
func (b block4[W]) Width() int { return int(unsafe.Sizeof(W(0))) * 8 }

func (b block4[W]) Generate(out, ctr []uint64) {
	if len(out) != 4 || len(ctr) != 4 {
		panic("philox: block length mismatch")
	}
	r := b.g.Generate(Counter4[W]{W(ctr[0]), W(ctr[1]), W(ctr[2]), W(ctr[3])})
	out[0], out[1], out[2], out[3] = uint64(r[0]), uint64(r[1]), uint64(r[2]), uint64(r[3])
}
