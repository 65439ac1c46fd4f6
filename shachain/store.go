package shachain

import "fmt"

// ErrInconsistentSecret is returned by Insert when a newly inserted secret
// doesn't derive the same value the store already has on record for an
// index it claims to be an ancestor of. This means the two secrets were
// never generated from the same seed, or were supplied out of order.
type ErrInconsistentSecret struct {
	Height uint64
}

func (e ErrInconsistentSecret) Error() string {
	return fmt.Sprintf("secret for height %d is inconsistent with a "+
		"previously stored secret", e.Height)
}

type storeElement struct {
	index  uint64
	secret Secret
}

// Store is the receiver side of the scheme: a compressed structure that
// retains at most numBuckets secrets, yet can answer Get for every height
// it has ever been Insert-ed, by rederiving from whichever retained secret
// is its closest ancestor. This is the "treat as a black box" store named
// in §3/§9: Insert(index, secret) and Get(index) -> Option<secret>.
type Store struct {
	buckets [numBuckets]*storeElement
}

// NewStore returns an empty receiver store.
func NewStore() *Store {
	return &Store{}
}

// Insert records the secret revealed for the given commitment height. The
// caller (the channel engine, on receiving a revoke_and_ack) must supply
// secrets in increasing height order; this is required for the
// compression to work and is verified for every bucket Insert can check.
func (s *Store) Insert(height uint64, secret Secret) error {
	index := shaChainIndex(height)
	bucket := numTrailingZeros(index)

	for i := uint8(0); i < bucket; i++ {
		existing := s.buckets[i]
		if existing == nil {
			continue
		}

		derived, ok := deriveFromSecret(index, secret, existing.index)
		if !ok || derived != existing.secret {
			return ErrInconsistentSecret{Height: height}
		}
	}

	s.buckets[bucket] = &storeElement{index: index, secret: secret}

	// Every bucket below this one is now rederivable from the secret we
	// just verified against them, so there's no need to retain them.
	for i := uint8(0); i < bucket; i++ {
		s.buckets[i] = nil
	}

	return nil
}

// Get returns the per-commitment secret for height, rederiving it from
// whichever stored bucket is its closest ancestor. The second return
// value is false if no stored secret can reach that height (either it was
// never revealed, or it lies in the future relative to what's stored).
func (s *Store) Get(height uint64) (Secret, bool) {
	index := shaChainIndex(height)

	for i := 0; i < numBuckets; i++ {
		elem := s.buckets[i]
		if elem == nil {
			continue
		}

		if secret, ok := deriveFromSecret(elem.index, elem.secret, index); ok {
			return secret, true
		}
	}

	return Secret{}, false
}
