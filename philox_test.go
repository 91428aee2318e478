package philox

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

// known answer vectors from the Random123 distribution.

func TestKnownAnswers4x64(t *testing.T) {
	cases := []struct {
		key Key4[uint64]
		ctr Counter4[uint64]
		out Counter4[uint64]
	}{
		{
			key: Key4[uint64]{0, 0},
			ctr: Counter4[uint64]{0, 0, 0, 0},
			out: Counter4[uint64]{0x16554d9eca36314c, 0xdb20fe9d672d0fdc, 0xd7e772cee186176b, 0x7e68b68aec7ba23b},
		},
		{
			key: Key4[uint64]{math.MaxUint64, math.MaxUint64},
			ctr: Counter4[uint64]{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64},
			out: Counter4[uint64]{0x87b092c3013fe90b, 0x438c3c67be8d0224, 0x9cc7d7c69cd777b6, 0xa09caebf594f0ba0},
		},
		{
			key: Key4[uint64]{0x452821e638d01377, 0xbe5466cf34e90c6c},
			ctr: Counter4[uint64]{0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89},
			out: Counter4[uint64]{0xa528f45403e61d95, 0x38c72dbd566e9788, 0xa5a1610e72fd18b5, 0x57bd43b5e52b7fe6},
		},
	}

	for _, c := range cases {
		assert.Equal(t, New4(c.key).Generate(c.ctr), c.out)
	}
}

func TestKnownAnswers4x32(t *testing.T) {
	cases := []struct {
		key Key4[uint32]
		ctr Counter4[uint32]
		out Counter4[uint32]
	}{
		{
			key: Key4[uint32]{0, 0},
			ctr: Counter4[uint32]{0, 0, 0, 0},
			out: Counter4[uint32]{0x6627e8d5, 0xe169c58d, 0xbc57ac4c, 0x9b00dbd8},
		},
		{
			key: Key4[uint32]{math.MaxUint32, math.MaxUint32},
			ctr: Counter4[uint32]{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32},
			out: Counter4[uint32]{0x408f276d, 0x41c83b0e, 0xa20bc7c6, 0x6d5451fd},
		},
		{
			key: Key4[uint32]{0xa4093822, 0x299f31d0},
			ctr: Counter4[uint32]{0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344},
			out: Counter4[uint32]{0xd16cfe09, 0x94fdcceb, 0x5001e420, 0x24126ea1},
		},
	}

	for _, c := range cases {
		assert.Equal(t, New4(c.key).Generate(c.ctr), c.out)
	}
}

func TestKnownAnswers2x64(t *testing.T) {
	cases := []struct {
		key Key2[uint64]
		ctr Counter2[uint64]
		out Counter2[uint64]
	}{
		{
			key: Key2[uint64]{0},
			ctr: Counter2[uint64]{0, 0},
			out: Counter2[uint64]{0xca00a0459843d731, 0x66c24222c9a845b5},
		},
		{
			key: Key2[uint64]{math.MaxUint64},
			ctr: Counter2[uint64]{math.MaxUint64, math.MaxUint64},
			out: Counter2[uint64]{0x65b021d60cd8310f, 0x4d02f3222f86df20},
		},
		{
			key: Key2[uint64]{0xa4093822299f31d0},
			ctr: Counter2[uint64]{0x243f6a8885a308d3, 0x13198a2e03707344},
			out: Counter2[uint64]{0x0a5e742c2997341c, 0xb0f883d38000de5d},
		},
	}

	for _, c := range cases {
		assert.Equal(t, New2(c.key).Generate(c.ctr), c.out)
	}
}

func TestKnownAnswers2x32(t *testing.T) {
	cases := []struct {
		key Key2[uint32]
		ctr Counter2[uint32]
		out Counter2[uint32]
	}{
		{
			key: Key2[uint32]{0},
			ctr: Counter2[uint32]{0, 0},
			out: Counter2[uint32]{0xff1dae59, 0x6cd10df2},
		},
		{
			key: Key2[uint32]{math.MaxUint32},
			ctr: Counter2[uint32]{math.MaxUint32, math.MaxUint32},
			out: Counter2[uint32]{0x2c3f628b, 0xab4fd7ad},
		},
		{
			key: Key2[uint32]{0x13198a2e},
			ctr: Counter2[uint32]{0x243f6a88, 0x85a308d3},
			out: Counter2[uint32]{0xdd7ce038, 0xf62a4c12},
		},
	}

	for _, c := range cases {
		assert.Equal(t, New2(c.key).Generate(c.ctr), c.out)
	}
}

func TestGenerate(t *testing.T) {
	t.Run("Rounds", func(t *testing.T) {
		key := Key4[uint64]{0, 0}
		ctr := Counter4[uint64]{0, 0, 0, 0}

		assert.Equal(t, New4Rounds(key, 7).Generate(ctr),
			Counter4[uint64]{0x5dc8ee6268ec62cd, 0x139bc570b6c125a0, 0x84d6deb4fb65f49e, 0xaff7583376d378c2})

		assert.Equal(t, New4Rounds(Key4[uint64]{1, 2}, 1).Generate(Counter4[uint64]{3, 4, 5, 6}),
			Counter4[uint64]{0x0000000000000006, 0xf3c48bf1e95a56b3, 0x0000000000000006, 0x78b5d52ca3e545b9})
	})

	t.Run("ZeroRoundsIdentity", func(t *testing.T) {
		ctr4 := Counter4[uint64]{1, 2, 3, math.MaxUint64}
		assert.Equal(t, New4Rounds(Key4[uint64]{5, 6}, 0).Generate(ctr4), ctr4)

		ctr2 := Counter2[uint32]{math.MaxUint32, 7}
		assert.Equal(t, New2Rounds(Key2[uint32]{9}, 0).Generate(ctr2), ctr2)
	})

	t.Run("Deterministic", func(t *testing.T) {
		g := New4(Key4[uint64]{0xdead, 0xbeef})
		for i := uint64(0); i < 100; i++ {
			ctr := Counter4[uint64]{i, i * 3, ^i, i << 7}
			assert.Equal(t, g.Generate(ctr), g.Generate(ctr))
		}
	})

	t.Run("KeyUnchanged", func(t *testing.T) {
		key := Key4[uint32]{1, 2}
		g := New4(key)
		g.Generate(Counter4[uint32]{})
		g.Generate(Counter4[uint32]{1})
		assert.Equal(t, g.Key(), key)

		key2 := Key2[uint64]{3}
		h := New2(key2)
		h.Generate(Counter2[uint64]{})
		assert.Equal(t, h.Key(), key2)
	})
}

func TestValue(t *testing.T) {
	t.Run("Equal", func(t *testing.T) {
		a := New4(Key4[uint64]{1, 2})
		b := New4(Key4[uint64]{1, 2})
		c := New4(Key4[uint64]{1, 3})
		assert.That(t, a.Equal(b))
		assert.That(t, !a.Equal(c))
		assert.That(t, !a.Equal(New4Rounds(Key4[uint64]{1, 2}, 7)))

		d := New2(Key2[uint32]{4})
		assert.That(t, d.Equal(New2(Key2[uint32]{4})))
		assert.That(t, !d.Equal(New2(Key2[uint32]{5})))
	})

	t.Run("Default", func(t *testing.T) {
		g := New4(Key4[uint32]{})
		assert.Equal(t, g.Key(), Key4[uint32]{0, 0})
		assert.Equal(t, g.Rounds(), uint(DefaultRounds))
	})

	t.Run("Copy", func(t *testing.T) {
		a := New2(Key2[uint64]{1})
		b := a
		b.SetKey(Key2[uint64]{2})
		assert.Equal(t, a.Key(), Key2[uint64]{1})
		assert.Equal(t, b.Key(), Key2[uint64]{2})
		assert.That(t, !a.Equal(b))

		b.SetKey(Key2[uint64]{1})
		assert.That(t, a.Equal(b))
	})

	t.Run("KeyCopy", func(t *testing.T) {
		g := New4(Key4[uint64]{1, 2})
		k := g.Key()
		k[0] = 99
		assert.Equal(t, g.Key(), Key4[uint64]{1, 2})
	})
}

func TestConstants(t *testing.T) {
	assert.Equal(t, Constants2[uint32](), Constants[uint32]{M0: 0xD256D193, W0: 0x9E3779B9})
	assert.Equal(t, Constants2[uint64](), Constants[uint64]{M0: 0xD2B74407B1CE6E93, W0: 0x9E3779B97F4A7C15})
	assert.Equal(t, Constants4[uint32](), Constants[uint32]{
		M0: 0xD2511F53, M1: 0xCD9E8D57,
		W0: 0x9E3779B9, W1: 0xBB67AE85,
	})
	assert.Equal(t, Constants4[uint64](), Constants[uint64]{
		M0: 0xD2E7470EE14C6C93, M1: 0xCA5A826395121157,
		W0: 0x9E3779B97F4A7C15, W1: 0xBB67AE8584CAA73B,
	})

	// the returned value is a copy
	c := Constants4[uint64]()
	c.M0 = 0
	assert.Equal(t, Constants4[uint64]().M0, uint64(0xD2E7470EE14C6C93))
}

var blackhole4x64 Counter4[uint64]
var blackhole4x32 Counter4[uint32]
var blackhole2x64 Counter2[uint64]
var blackhole2x32 Counter2[uint32]

func BenchmarkGenerate(b *testing.B) {
	b.Run("4x64", func(b *testing.B) {
		g := New4(Key4[uint64]{1, 2})
		b.SetBytes(32)
		for i := 0; i < b.N; i++ {
			blackhole4x64 = g.Generate(Counter4[uint64]{uint64(i)})
		}
	})

	b.Run("4x32", func(b *testing.B) {
		g := New4(Key4[uint32]{1, 2})
		b.SetBytes(16)
		for i := 0; i < b.N; i++ {
			blackhole4x32 = g.Generate(Counter4[uint32]{uint32(i)})
		}
	})

	b.Run("2x64", func(b *testing.B) {
		g := New2(Key2[uint64]{1})
		b.SetBytes(16)
		for i := 0; i < b.N; i++ {
			blackhole2x64 = g.Generate(Counter2[uint64]{uint64(i)})
		}
	})

	b.Run("2x32", func(b *testing.B) {
		g := New2(Key2[uint32]{1})
		b.SetBytes(8)
		for i := 0; i < b.N; i++ {
			blackhole2x32 = g.Generate(Counter2[uint32]{uint32(i)})
		}
	})
}
