package htlcwire

import (
	"fmt"
	"io"
)

// maxHtlcSigs caps the number of per-HTLC signatures a single CommitSig
// can carry, matching the largest number of in-flight HTLCs a commitment
// transaction can hold before its weight exceeds standardness limits.
const maxHtlcSigs = 966

// CommitSig is sent by one channel party to the other to "lock in" the
// current set of proposed changes by signing the counterparty's next
// commitment transaction, along with every HTLC output it contains.
type CommitSig struct {
	// ChanID references the channel whose commitment is being signed.
	ChanID ChannelID

	// CommitSig is the signature for the receiver's new commitment
	// transaction.
	CommitSig Sig

	// HtlcSigs is one signature per HTLC output in the new commitment
	// transaction, in ascending order of the commitment output index
	// each HTLC sub-transaction spends (see lnwallet's sortBothHtlcs).
	HtlcSigs []Sig
}

var _ Message = (*CommitSig)(nil)

// Decode deserializes a serialized CommitSig stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *CommitSig) Decode(r io.Reader, pver uint32) error {
	if err := readElements(r, &c.ChanID, &c.CommitSig); err != nil {
		return err
	}

	var numSigs uint16
	if err := readElements(r, &numSigs); err != nil {
		return err
	}
	if int(numSigs) > maxHtlcSigs {
		return fmt.Errorf("sig count %d exceeds max of %d", numSigs,
			maxHtlcSigs)
	}

	c.HtlcSigs = make([]Sig, numSigs)
	for i := range c.HtlcSigs {
		if err := readElements(r, &c.HtlcSigs[i]); err != nil {
			return err
		}
	}

	return nil
}

// Encode serializes the target CommitSig into the passed io.Writer
// observing the protocol version specified.
//
// This is part of the Message interface.
func (c *CommitSig) Encode(w io.Writer, pver uint32) error {
	if len(c.HtlcSigs) > maxHtlcSigs {
		return fmt.Errorf("sig count %d exceeds max of %d",
			len(c.HtlcSigs), maxHtlcSigs)
	}

	if err := writeElements(w, c.ChanID, c.CommitSig); err != nil {
		return err
	}

	if err := writeElements(w, uint16(len(c.HtlcSigs))); err != nil {
		return err
	}

	for _, sig := range c.HtlcSigs {
		if err := writeElements(w, sig); err != nil {
			return err
		}
	}

	return nil
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *CommitSig) MsgType() MessageType {
	return MsgCommitSig
}

// MaxPayloadLength returns the maximum allowed payload size for a
// CommitSig complete message observing the specified protocol version.
//
// This is part of the Message interface.
func (c *CommitSig) MaxPayloadLength(uint32) uint32 {
	return 65535
}

var _ Message = (*CommitSig)(nil)
