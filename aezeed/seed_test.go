package aezeed

import (
	"bytes"
	"testing"
)

// testEntropy is the fixed entropy 00 01 02 ... 0F used throughout the test
// vectors named in the specification's testable properties.
var testEntropy = [entropySize]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

func TestSeedRoundTrip(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{
		InternalVersion: Version,
		Birthday:        0,
		Entropy:         testEntropy,
	}

	mnemonic, err := seed.ToMnemonic(nil)
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	recovered, err := DecipherMnemonic(mnemonic, nil)
	if err != nil {
		t.Fatalf("unable to decipher mnemonic: %v", err)
	}

	if recovered.Birthday != seed.Birthday {
		t.Fatalf("birthday mismatch: expected %v, got %v",
			seed.Birthday, recovered.Birthday)
	}
	if !bytes.Equal(recovered.Entropy[:], seed.Entropy[:]) {
		t.Fatalf("entropy mismatch: expected %x, got %x",
			seed.Entropy, recovered.Entropy)
	}
}

func TestMnemonicRoundTrip(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	enciphered, err := seed.Encipher(nil)
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	mnemonic := ToMnemonic(enciphered, DefaultWordList)

	cipherText, err := mnemonic.ToCipherText(DefaultWordList)
	if err != nil {
		t.Fatalf("unable to convert mnemonic back to ciphertext: %v", err)
	}

	if cipherText != enciphered {
		t.Fatalf("ciphertext mismatch after mnemonic round trip: "+
			"expected %x, got %x", enciphered, cipherText)
	}
}

func TestWrongPassphraseFails(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	mnemonic, err := seed.ToMnemonic([]byte("correct horse"))
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	if _, err := DecipherMnemonic(mnemonic, []byte("bad")); err != ErrInvalidPass {
		t.Fatalf("expected ErrInvalidPass, got: %v", err)
	}
}

func TestCorruptedChecksumFails(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	enciphered, err := seed.Encipher(nil)
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	mnemonic := ToMnemonic(enciphered, DefaultWordList)

	// Flip the final word to a neighbour in the word list. This perturbs
	// the trailing bits of the bit stream, which live inside the
	// checksum field, so decipherment must fail with a checksum
	// mismatch rather than succeeding silently.
	lastWordIdx := -1
	for i, w := range DefaultWordList {
		if w == mnemonic[NumMnemonicWords-1] {
			lastWordIdx = i
			break
		}
	}
	if lastWordIdx == -1 {
		t.Fatalf("word %q not found in word list", mnemonic[NumMnemonicWords-1])
	}
	mnemonic[NumMnemonicWords-1] = DefaultWordList[(lastWordIdx+1)%wordListSize]

	_, err = DecipherMnemonic(mnemonic, nil)
	mismatch, ok := err.(ErrIncorrectMnemonic)
	if !ok {
		t.Fatalf("expected ErrIncorrectMnemonic, got: %v", err)
	}
	if mismatch.ExpectedChecksum == mismatch.ActualChecksum {
		t.Fatalf("expected checksum mismatch to differ")
	}
}

func TestBitFlipNeverSucceeds(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	enciphered, err := seed.Encipher(nil)
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	for bitIdx := 0; bitIdx < encipheredPayloadSize*8; bitIdx++ {
		tampered := enciphered
		tampered[bitIdx/8] ^= 1 << uint(bitIdx%8)

		if _, err := Decipher(tampered, nil); err == nil {
			t.Fatalf("bit flip at position %v unexpectedly succeeded",
				bitIdx)
		}
	}
}

func TestChangePassphrase(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	mnemonic1, err := seed.ToMnemonic([]byte("aezeed"))
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	mnemonic2, err := ChangeMnemonicPassphrase(
		mnemonic1, []byte("aezeed"), []byte("newpass"),
	)
	if err != nil {
		t.Fatalf("unable to change passphrase: %v", err)
	}

	if mnemonic1 == mnemonic2 {
		t.Fatalf("expected new mnemonic to differ from the original")
	}

	recovered, err := DecipherMnemonic(mnemonic2, []byte("newpass"))
	if err != nil {
		t.Fatalf("unable to decipher mnemonic with new passphrase: %v", err)
	}

	if !bytes.Equal(recovered.Entropy[:], seed.Entropy[:]) {
		t.Fatalf("entropy mismatch after passphrase change: expected "+
			"%x, got %x", seed.Entropy, recovered.Entropy)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	t.Parallel()

	seed := &CipherSeed{InternalVersion: Version, Entropy: testEntropy}

	enciphered, err := seed.Encipher(nil)
	if err != nil {
		t.Fatalf("unable to encipher seed: %v", err)
	}

	enciphered[0] = 1

	_, err = Decipher(enciphered, nil)
	versionErr, ok := err.(ErrIncorrectVersion)
	if !ok {
		t.Fatalf("expected ErrIncorrectVersion, got: %v", err)
	}
	if versionErr.Version != 1 {
		t.Fatalf("expected version 1 in error, got %v", versionErr.Version)
	}
}

func TestBirthdayRoundTrip(t *testing.T) {
	t.Parallel()

	birthday := TimeToBirthday(BirthdayToTime(12345))
	if birthday != 12345 {
		t.Fatalf("birthday round trip mismatch: expected 12345, got %v",
			birthday)
	}
}
