package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Hash - Function that maps a key to a 32 bit hash value. The bucket for a
// key is selected as hash modulo the number of buckets, so a custom
// implementation only has to produce a reasonable spread over the full 32 bit
// range for the particular distribution of keys it will see.
// A Hash must be pure, the same key must always produce the same value.
type Hash func(key string) uint32

// DJB2 - Daniel Bernstein's djb2 string hash, the default bucket selection
// algorithm
func DJB2(key string) uint32 {
	hash := uint32(5381)
	for i := 0; i < len(key); i++ {
		hash = hash<<5 + hash + uint32(key[i])
	}

	return hash
}

// SDBM - The sdbm string hash, an alternative built-in with a different
// distribution profile than DJB2
func SDBM(key string) uint32 {
	var hash uint32
	for i := 0; i < len(key); i++ {
		hash = uint32(key[i]) + hash<<6 + hash<<16 - hash
	}

	return hash
}

// XX - xxHash based built-in, the 64 bit sum truncated to 32 bits.
// Considerably better spread than DJB2/SDBM on short binary-ish keys.
func XX(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}

// Sip - Returns a keyed SipHash-2-4 based Hash using the two given 64 bit key
// halves. Useful when bucket distribution must not be predictable by the
// producer of the keys.
func Sip(k0, k1 uint64) Hash {
	return func(key string) uint32 {
		return uint32(siphash.Hash(k0, k1, []byte(key)))
	}
}
