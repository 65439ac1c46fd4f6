package aezeed

// ToMnemonic enciphers the seed and renders the result as a 24-word mnemonic
// drawn from the default English word list.
func (c *CipherSeed) ToMnemonic(passphrase []byte) (Mnemonic, error) {
	enciphered, err := c.Encipher(passphrase)
	if err != nil {
		return Mnemonic{}, err
	}

	return ToMnemonic(enciphered, DefaultWordList), nil
}

// DecipherMnemonic maps a 24-word mnemonic back to ciphertext bytes using
// the default word list, then deciphers it into the original seed.
func DecipherMnemonic(m Mnemonic, passphrase []byte) (*CipherSeed, error) {
	enciphered, err := m.ToCipherText(DefaultWordList)
	if err != nil {
		return nil, err
	}

	return Decipher(enciphered, passphrase)
}

// ChangeMnemonicPassphrase deciphers m under oldPass and re-enciphers the
// recovered seed under newPass with a freshly drawn salt, returning a new
// (generally different) mnemonic that recovers the same entropy.
func ChangeMnemonicPassphrase(m Mnemonic, oldPass, newPass []byte) (Mnemonic, error) {
	seed, err := DecipherMnemonic(m, oldPass)
	if err != nil {
		return Mnemonic{}, err
	}

	return seed.ToMnemonic(newPass)
}
