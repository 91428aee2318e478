//go:build gofuzz
// +build gofuzz

package philox

import "bytes"

func Fuzz(data []byte) int {
	var s Stream
	if err := s.UnmarshalBinary(data); err != nil {
		return 0
	}

	out, err := s.MarshalBinary()
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(out, data) {
		panic("stream state did not round trip")
	}

	// drawing across a block boundary must not fail
	for i := 0; i < 5; i++ {
		s.Uint64()
	}
	return 1
}
