package aezeed

import "fmt"

var (
	// ErrInvalidPass is returned if the user enters an invalid passphrase
	// for a particular enciphered mnemonic.
	ErrInvalidPass = fmt.Errorf("invalid passphrase")
)

// ErrIncorrectVersion is returned if a seed bares a mismatched version to
// that of the package executing the aezeed scheme.
type ErrIncorrectVersion struct {
	Version byte
}

// Error returns a human readable string describing the error.
func (e ErrIncorrectVersion) Error() string {
	return fmt.Sprintf("invalid cipher seed version %v, only %v is "+
		"supported", e.Version, Version)
}

// ErrIncorrectMnemonic is returned if we detect that the checksum of the
// specified mnemonic doesn't match. This indicates the user input the wrong
// mnemonic, or flipped a word (or letter within a word) by mistake.
type ErrIncorrectMnemonic struct {
	// ExpectedChecksum is the CRC32 checksum that was encoded within the
	// final enciphered blob.
	ExpectedChecksum uint32

	// ActualChecksum is the CRC32 checksum we computed ourselves using
	// the included payload.
	ActualChecksum uint32
}

// Error returns a human readable string describing the error.
func (e ErrIncorrectMnemonic) Error() string {
	return fmt.Sprintf("mnemonic phrase checksum mismatch: expected %x, "+
		"got %x", e.ExpectedChecksum, e.ActualChecksum)
}

// ErrUnknownMnemonicWord is returned when attempting to decipher an
// enciphered mnemonic, but a word encountered isn't a member of the word
// list in use.
type ErrUnknownMnemonicWord struct {
	Word  string
	Index int
}

// Error returns a human readable string describing the error.
func (e ErrUnknownMnemonicWord) Error() string {
	return fmt.Sprintf("word %q at index %v isn't a part of the active "+
		"word list", e.Word, e.Index)
}
