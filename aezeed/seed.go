// Package aezeed implements the cipher seed codec used to turn 16 bytes of
// wallet entropy into a 24-word backup mnemonic, and back. The mnemonic is a
// versioned, checksummed, AEZ-enciphered envelope that can optionally be
// locked behind a user passphrase.
package aezeed

import (
	"crypto/rand"
	"encoding/binary"
	"hash/crc32"
	"time"

	"github.com/Yawning/aez"
	"golang.org/x/crypto/scrypt"
)

const (
	// Version is the only cipher seed version this package understands
	// how to encipher and decipher.
	Version uint8 = 0

	// entropySize is the number of bytes of wallet entropy packed into a
	// cipher seed.
	entropySize = 16

	// saltSize is the number of random bytes mixed into the passphrase
	// derivation on every encipherment.
	saltSize = 5

	// checksumSize is the size of the CRC32 checksum appended to the
	// enciphered blob.
	checksumSize = 4

	// decipheredPayloadSize is the size, in bytes, of the plaintext
	// seed: version || birthday || entropy.
	decipheredPayloadSize = 1 + 2 + entropySize

	// encipheredPayloadSize is the size, in bytes, of the fully
	// enciphered seed: version || ciphertext || salt || checksum.
	encipheredPayloadSize = 1 + (decipheredPayloadSize + cipherTextExpansion) + saltSize + checksumSize

	// cipherTextExpansion is the number of bytes of expansion AEZ adds
	// to its ciphertext relative to the plaintext it authenticates.
	cipherTextExpansion = 4

	// saltOffset and checksumOffset locate the salt and checksum within
	// the enciphered blob.
	saltOffset     = encipheredPayloadSize - saltSize - checksumSize
	checksumOffset = encipheredPayloadSize - checksumSize

	// adSize is the size of the associated data bound into the AEZ
	// envelope: version || salt.
	adSize = 1 + saltSize

	// keySize is the size of the scrypt-derived key used to key AEZ.
	keySize = 32

	// scryptN, scryptR, and scryptP are the tunable cost parameters fed
	// to scrypt when stretching the user's passphrase.
	scryptN = 32768
	scryptR = 8
	scryptP = 1

	// defaultPassphrase is used in place of a user-supplied passphrase
	// whenever the caller doesn't provide one.
	defaultPassphrase = "aezeed"
)

// bitcoinGenesisTimestamp is the timestamp of the Bitcoin mainnet genesis
// block. Seed birthdays are expressed as the number of days elapsed since
// this instant, which keeps the on-disk encoding to 2 bytes while covering
// several centuries of wallets.
var bitcoinGenesisTimestamp = time.Date(2009, time.January, 3, 18, 15, 5, 0, time.UTC)

// CipherSeed is the plaintext representation of a wallet seed: a version
// byte, a birthday, 16 bytes of entropy, and the salt used on the most
// recent encipherment. Only the first three fields round-trip through
// Encipher/Decipher; Salt is regenerated fresh on every Encipher call.
type CipherSeed struct {
	// InternalVersion is the version of this cipher seed. Callers should
	// never need to set this field, as NewCipherSeed always stamps the
	// single version this package understands.
	InternalVersion uint8

	// Birthday is the number of days elapsed since the Bitcoin genesis
	// block that this seed was created on.
	Birthday uint16

	// Entropy is the raw wallet seed entropy.
	Entropy [entropySize]byte

	// Salt is the salt used to stretch the encipherment passphrase via
	// scrypt. A fresh salt is drawn on every call to Encipher.
	Salt [saltSize]byte
}

// New generates a fresh CipherSeed using the passed entropy and the current
// time as the birthday. If entropy is nil, 16 bytes are read from the
// system's CSPRNG.
func New(entropy []byte) (*CipherSeed, error) {
	seed := &CipherSeed{
		InternalVersion: Version,
		Birthday:        TimeToBirthday(time.Now()),
	}

	if entropy == nil {
		if _, err := rand.Read(seed.Entropy[:]); err != nil {
			return nil, err
		}
	} else {
		copy(seed.Entropy[:], entropy)
	}

	return seed, nil
}

// TimeToBirthday converts a wall-clock time into the number of days elapsed
// since the Bitcoin genesis block, saturating at the u16 boundary.
func TimeToBirthday(t time.Time) uint16 {
	if t.Before(bitcoinGenesisTimestamp) {
		return 0
	}

	days := t.Sub(bitcoinGenesisTimestamp) / (time.Hour * 24)
	if days > 0xffff {
		return 0xffff
	}

	return uint16(days)
}

// BirthdayToTime converts the number of days elapsed since the Bitcoin
// genesis block back into a wall-clock time.
func BirthdayToTime(birthday uint16) time.Time {
	return bitcoinGenesisTimestamp.Add(time.Duration(birthday) * time.Hour * 24)
}

// Encipher deterministically serializes the CipherSeed's plaintext fields,
// draws a fresh salt, and produces the 33-byte AEZ-enciphered, checksummed
// envelope described in §4.1. If passphrase is empty, defaultPassphrase is
// used in its place.
func (c *CipherSeed) Encipher(passphrase []byte) ([encipheredPayloadSize]byte, error) {
	var enciphered [encipheredPayloadSize]byte

	if _, err := rand.Read(c.Salt[:]); err != nil {
		return enciphered, err
	}

	plaintext := c.encodePlaintext()

	key, err := stretchPassphrase(passphrase, c.Salt[:])
	if err != nil {
		return enciphered, err
	}

	ad := associatedData(Version, c.Salt[:])

	ciphertext := aez.Encrypt(
		key, nil, [][]byte{ad[:]}, cipherTextExpansion, plaintext[:], nil,
	)

	enciphered[0] = Version
	copy(enciphered[1:1+len(ciphertext)], ciphertext)
	copy(enciphered[saltOffset:saltOffset+saltSize], c.Salt[:])

	checksum := crc32.ChecksumIEEE(enciphered[:checksumOffset])
	binary.BigEndian.PutUint32(enciphered[checksumOffset:], checksum)

	return enciphered, nil
}

// Decipher reverses Encipher: it validates the version and checksum, derives
// the scrypt key with the embedded salt, and authenticates/decrypts the AEZ
// envelope. If passphrase is empty, defaultPassphrase is used in its place.
func Decipher(enciphered [encipheredPayloadSize]byte, passphrase []byte) (*CipherSeed, error) {
	version := enciphered[0]
	if version != Version {
		return nil, ErrIncorrectVersion{Version: version}
	}

	expectedChecksum := binary.BigEndian.Uint32(enciphered[checksumOffset:])
	actualChecksum := crc32.ChecksumIEEE(enciphered[:checksumOffset])
	if expectedChecksum != actualChecksum {
		return nil, ErrIncorrectMnemonic{
			ExpectedChecksum: expectedChecksum,
			ActualChecksum:   actualChecksum,
		}
	}

	var salt [saltSize]byte
	copy(salt[:], enciphered[saltOffset:saltOffset+saltSize])

	key, err := stretchPassphrase(passphrase, salt[:])
	if err != nil {
		return nil, err
	}

	ad := associatedData(version, salt[:])

	ciphertext := enciphered[1:saltOffset]
	plaintext, ok := aez.Decrypt(
		key, nil, [][]byte{ad[:]}, cipherTextExpansion, ciphertext, nil,
	)
	if !ok {
		return nil, ErrInvalidPass
	}

	seed := &CipherSeed{Salt: salt}
	if err := seed.decodePlaintext(plaintext); err != nil {
		return nil, err
	}

	return seed, nil
}

// encodePlaintext serializes the 19-byte plaintext payload: version ||
// birthday_be16 || entropy.
func (c *CipherSeed) encodePlaintext() [decipheredPayloadSize]byte {
	var plaintext [decipheredPayloadSize]byte

	plaintext[0] = Version
	binary.BigEndian.PutUint16(plaintext[1:3], c.Birthday)
	copy(plaintext[3:], c.Entropy[:])

	return plaintext
}

// decodePlaintext reverses encodePlaintext, populating the receiver.
func (c *CipherSeed) decodePlaintext(plaintext []byte) error {
	if len(plaintext) != decipheredPayloadSize {
		return ErrIncorrectVersion{Version: plaintext[0]}
	}

	c.InternalVersion = plaintext[0]
	c.Birthday = binary.BigEndian.Uint16(plaintext[1:3])
	copy(c.Entropy[:], plaintext[3:])

	return nil
}

// associatedData builds the 6-byte AEZ associated data: version || salt.
func associatedData(version uint8, salt []byte) [adSize]byte {
	var ad [adSize]byte
	ad[0] = version
	copy(ad[1:], salt)
	return ad
}

// stretchPassphrase derives a fixed-size encryption key from a user
// passphrase (or the default one, if none was given) using scrypt with the
// parameters fixed by §6.
func stretchPassphrase(passphrase, salt []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		passphrase = []byte(defaultPassphrase)
	}

	return scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, keySize)
}

// ChangePassphrase deciphers enciphered with oldPass, then re-enciphers
// the recovered entropy and birthday under newPass with a freshly generated
// salt, returning the new enciphered envelope.
func ChangePassphrase(enciphered [encipheredPayloadSize]byte, oldPass,
	newPass []byte) ([encipheredPayloadSize]byte, error) {

	var newEnciphered [encipheredPayloadSize]byte

	seed, err := Decipher(enciphered, oldPass)
	if err != nil {
		return newEnciphered, err
	}

	return seed.Encipher(newPass)
}

