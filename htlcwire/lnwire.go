package htlcwire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
)

// ChannelID is the unique identifier for a channel, derived from the
// funding transaction's outpoint (txid XORed with the output index in its
// last two bytes). It's opaque to this package: nothing here constructs
// one, messages just carry it.
type ChannelID [32]byte

// Sig is a fixed-size, zero-padded raw signature as carried on the wire:
// 64 bytes for a compact ECDSA signature (32 byte R, 32 byte S).
type Sig [64]byte

// MilliSatoshi expresses an amount in thousandths of a satoshi, the unit
// HTLC amounts and fee updates are carried in on the wire.
type MilliSatoshi uint64

// ToSatoshis rounds down to the nearest whole satoshi, the unit
// commitment transaction outputs are denominated in.
func (m MilliSatoshi) ToSatoshis() btcutil.Amount {
	return btcutil.Amount(m / 1000)
}

// readElements reads a sequence of wire elements from r in order, growing
// the error the moment one fails. Supported element types are the ones
// the message files in this package actually use.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *ChannelID:
		_, err := io.ReadFull(r, e[:])
		return err

	case []byte:
		_, err := io.ReadFull(r, e)
		return err

	case *Sig:
		_, err := io.ReadFull(r, e[:])
		return err

	case *uint64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = binary.BigEndian.Uint64(b[:])
		return nil

	case *MilliSatoshi:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = MilliSatoshi(binary.BigEndian.Uint64(b[:]))
		return nil

	case *uint32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = binary.BigEndian.Uint32(b[:])
		return nil

	case *uint16:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = binary.BigEndian.Uint16(b[:])
		return nil

	default:
		return fmt.Errorf("unknown type for readElement: %T", e)
	}
}

// writeElements writes a sequence of wire elements to w in order.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case ChannelID:
		_, err := w.Write(e[:])
		return err

	case []byte:
		_, err := w.Write(e)
		return err

	case Sig:
		_, err := w.Write(e[:])
		return err

	case uint64:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], e)
		_, err := w.Write(b[:])
		return err

	case MilliSatoshi:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(e))
		_, err := w.Write(b[:])
		return err

	case uint32:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], e)
		_, err := w.Write(b[:])
		return err

	case uint16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], e)
		_, err := w.Write(b[:])
		return err

	default:
		return fmt.Errorf("unknown type for writeElement: %T", e)
	}
}
