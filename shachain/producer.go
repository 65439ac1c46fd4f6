package shachain

// Producer generates the per-commitment secret for any commitment height
// from a single 32-byte root seed. It is the sender side of the scheme:
// the party who owns the seed never has to remember anything beyond it.
type Producer struct {
	root Secret
}

// NewProducer wraps a root seed, typically itself derived from the
// channel's seed extended key, as a secret producer.
func NewProducer(root Secret) *Producer {
	return &Producer{root: root}
}

// AtHeight returns the per-commitment secret for the given commitment
// height. Every call is pure: the same height always yields the same
// secret.
func (p *Producer) AtHeight(height uint64) Secret {
	index := shaChainIndex(height)

	// The root seed is the ancestor of every index, so this always
	// succeeds; it derives by flipping every bit of index from the
	// top, same as walking the full 48-level tree from the root.
	secret, _ := deriveFromSecret(0, p.root, index)
	return secret
}
