// Package shachain implements the compressed per-commitment secret store
// described in BOLT-3: a sender can derive up to 2^48 distinct 32-byte
// secrets from a single 32-byte seed, and a receiver who is handed those
// secrets in commitment order can store all of them it has seen so far in
// at most 49 buckets, rederiving any of them on demand.
//
// This replaces the older elkrem scheme the teacher package used; the
// on-disk node layout (1 byte bucket, 8 byte index, 32 byte secret) is kept
// from elkrem's serdes.go, but the derivation algorithm here is the BOLT-3
// shachain construction instead of elkrem's balanced binary tree.
package shachain

import "crypto/sha256"

// MaxHeight is the largest commitment height a shachain index can address.
// Commitment numbers are 48 bits wide (§3), so the index space spans
// 0..2^48-1.
const MaxHeight = (1 << 48) - 1

// numBuckets is the number of trailing-zero-bit buckets a Store can hold:
// one per possible bit position in a 48-bit index, plus the all-zero index
// itself.
const numBuckets = 48 + 1

// Secret is a single 256-bit per-commitment secret.
type Secret [32]byte

// shaChainIndex maps a commitment height to the index used internally by
// the derivation tree. Heights count up from zero as a channel's
// commitment number advances; indices count down, which is what lets the
// store exploit trailing-zero runs to stay compact as height grows.
func shaChainIndex(height uint64) uint64 {
	return MaxHeight - height
}

// deriveSecret computes the secret that lies `trailing` derivation steps
// below fromSecret, at fromIndex, flipping and re-hashing one bit per step
// as toIndex's lower bits dictate. The caller must already know fromIndex
// is a valid ancestor of toIndex (see numTrailingZeros / indexDerivable).
func deriveSecret(fromIndex uint64, fromSecret Secret, toIndex uint64, trailing uint8) Secret {
	secret := fromSecret

	for i := int(trailing) - 1; i >= 0; i-- {
		bit := uint8(i)
		if toIndex&(uint64(1)<<bit) == 0 {
			continue
		}

		secret[bit/8] ^= 1 << (bit % 8)
		secret = sha256.Sum256(secret[:])
	}

	return secret
}

// numTrailingZeros returns the number of trailing zero bits in a 48-bit
// index, capped at numBuckets-1 for the zero index (which is its own
// bucket, the root of the whole tree).
func numTrailingZeros(index uint64) uint8 {
	if index == 0 {
		return numBuckets - 1
	}

	var n uint8
	for index&1 == 0 {
		index >>= 1
		n++
	}

	return n
}

// indexDerivable reports whether the secret at fromIndex can derive the
// secret at toIndex: every bit of fromIndex above its own trailing-zero
// run must agree with the corresponding bit of toIndex.
func indexDerivable(fromIndex, toIndex uint64) bool {
	trailing := numTrailingZeros(fromIndex)
	if trailing >= 64 {
		return true
	}

	mask := ^uint64(0) << trailing
	return fromIndex&mask == toIndex&mask
}

// deriveFromSecret derives the secret at toIndex from a known secret at
// fromIndex, returning false if fromIndex is not an ancestor of toIndex in
// the derivation tree.
func deriveFromSecret(fromIndex uint64, fromSecret Secret, toIndex uint64) (Secret, bool) {
	if !indexDerivable(fromIndex, toIndex) {
		return Secret{}, false
	}

	return deriveSecret(fromIndex, fromSecret, toIndex, numTrailingZeros(fromIndex)), true
}
