// Package keys derives Philox keys from seeds, secrets and passphrases.
package keys

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
	"github.com/zeebo/errs"
	"golang.org/x/crypto/blake2b"

	"github.com/zeebo/philox"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("keys")

// SecretSize is the size in bytes of the secret passed to Derive.
const SecretSize = 32

// FromBytes hashes an arbitrary seed into a key. It is fast and not suitable
// for secrets.
func FromBytes(seed []byte) philox.Key4[uint64] {
	d := xxhash.New()
	_, _ = d.Write(seed)
	k0 := d.Sum64()

	// the second word continues the same digest so that the two words
	// differ even for empty seeds.
	_, _ = d.Write([]byte{0x01})
	return philox.Key4[uint64]{k0, d.Sum64()}
}

// FromString is FromBytes for a string seed.
func FromString(seed string) philox.Key4[uint64] {
	return FromBytes([]byte(seed))
}

// Derive returns the key for the numbered stream under the secret. Distinct
// streams get unrelated keys, and the keys cannot be predicted without the
// secret. The secret must be SecretSize bytes.
func Derive(secret []byte, stream uint64) (k philox.Key4[uint64], err error) {
	if len(secret) != SecretSize {
		return k, Error.New("secret has %d bytes: want %d", len(secret), SecretSize)
	}

	var msg [9]byte
	binary.BigEndian.PutUint64(msg[1:], stream)

	for i := range k {
		h, err := highwayhash.New64(secret)
		if err != nil {
			return k, Error.Wrap(err)
		}
		msg[0] = byte(i)
		_, _ = h.Write(msg[:])
		k[i] = binary.BigEndian.Uint64(h.Sum(nil))
	}
	return k, nil
}

// FromPassphrase returns a key from the BLAKE2b-256 digest of a passphrase.
func FromPassphrase(passphrase []byte) philox.Key4[uint64] {
	sum := blake2b.Sum256(passphrase)
	return philox.Key4[uint64]{
		binary.LittleEndian.Uint64(sum[0:8]),
		binary.LittleEndian.Uint64(sum[8:16]),
	}
}

// fold32 mixes the high half of x into its low half.
func fold32(x uint64) uint32 { return uint32(x>>32) ^ uint32(x) }

// To4x32 narrows a derived key for use with Philox4x32.
func To4x32(k philox.Key4[uint64]) philox.Key4[uint32] {
	return philox.Key4[uint32]{fold32(k[0]), fold32(k[1])}
}

// To2x64 narrows a derived key for use with Philox2x64.
func To2x64(k philox.Key4[uint64]) philox.Key2[uint64] {
	return philox.Key2[uint64]{k[0] ^ k[1]}
}

// To2x32 narrows a derived key for use with Philox2x32.
func To2x32(k philox.Key4[uint64]) philox.Key2[uint32] {
	return philox.Key2[uint32]{fold32(k[0] ^ k[1])}
}
