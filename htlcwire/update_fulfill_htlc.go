package htlcwire

import "io"

// UpdateFulfillHTLC is sent by one channel party to the other when it
// wishes to settle a particular HTLC, referenced by its ID. A subsequent
// CommitSig will "lock in" the removal of the specified HTLC, possibly
// batched together with other settled HTLCs.
type UpdateFulfillHTLC struct {
	// ChanID references an active channel which holds the HTLC to be
	// settled.
	ChanID ChannelID

	// ID denotes the exact HTLC stage within the receiving node's
	// commitment transaction to be removed.
	ID uint64

	// PaymentPreimage is the preimage required to fully settle an
	// HTLC, whose hash must match the original HTLC's PaymentHash.
	PaymentPreimage [32]byte
}

var _ Message = (*UpdateFulfillHTLC)(nil)

// Decode deserializes a serialized UpdateFulfillHTLC stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *UpdateFulfillHTLC) Decode(r io.Reader, pver uint32) error {
	return readElements(r,
		&c.ChanID,
		&c.ID,
		c.PaymentPreimage[:],
	)
}

// Encode serializes the target UpdateFulfillHTLC into the passed
// io.Writer observing the protocol version specified.
//
// This is part of the Message interface.
func (c *UpdateFulfillHTLC) Encode(w io.Writer, pver uint32) error {
	return writeElements(w,
		c.ChanID,
		c.ID,
		c.PaymentPreimage[:],
	)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *UpdateFulfillHTLC) MsgType() MessageType {
	return MsgUpdateFulfillHTLC
}

// MaxPayloadLength returns the maximum allowed payload size for a
// UpdateFulfillHTLC complete message observing the specified protocol
// version.
//
// This is part of the Message interface.
func (c *UpdateFulfillHTLC) MaxPayloadLength(uint32) uint32 {
	// 32 + 8 + 32
	return 72
}

var _ Message = (*UpdateFulfillHTLC)(nil)
