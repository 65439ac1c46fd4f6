package htlcwire

import "io"

// onionPacketSize is the fixed size of the Sphinx onion routing packet
// carried opaquely in every UpdateAddHTLC. This package only frames the
// blob; constructing or peeling it is out of scope (see spec.md §1).
const onionPacketSize = 1366

// UpdateAddHTLC is sent by one channel party to the other to propose
// adding a new HTLC to the channel. The HTLC doesn't take effect until
// it's included in a commitment signed by both sides.
type UpdateAddHTLC struct {
	// ChanID references the active channel this HTLC is proposed on.
	ChanID ChannelID

	// ID is the index assigned to this HTLC by its proposer, used to
	// refer back to it in later fulfill/fail/commitment messages.
	ID uint64

	// Amount is the value of the HTLC, in thousandths of a satoshi.
	Amount MilliSatoshi

	// PaymentHash is the hash whose preimage settles the HTLC.
	PaymentHash [32]byte

	// Expiry is the absolute block height after which this HTLC is no
	// longer payable and may be failed back or timed out on-chain.
	Expiry uint32

	// OnionBlob is the opaque, fixed-size Sphinx packet routing this
	// HTLC to its next hop. Its contents are never inspected here.
	OnionBlob [onionPacketSize]byte
}

var _ Message = (*UpdateAddHTLC)(nil)

// Decode deserializes a serialized UpdateAddHTLC stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (u *UpdateAddHTLC) Decode(r io.Reader, pver uint32) error {
	return readElements(r,
		&u.ChanID,
		&u.ID,
		&u.Amount,
		u.PaymentHash[:],
		&u.Expiry,
		u.OnionBlob[:],
	)
}

// Encode serializes the target UpdateAddHTLC into the passed io.Writer
// observing the protocol version specified.
//
// This is part of the Message interface.
func (u *UpdateAddHTLC) Encode(w io.Writer, pver uint32) error {
	return writeElements(w,
		u.ChanID,
		u.ID,
		u.Amount,
		u.PaymentHash[:],
		u.Expiry,
		u.OnionBlob[:],
	)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (u *UpdateAddHTLC) MsgType() MessageType {
	return MsgUpdateAddHTLC
}

// MaxPayloadLength returns the maximum allowed payload size for an
// UpdateAddHTLC complete message observing the specified protocol version.
//
// This is part of the Message interface.
func (u *UpdateAddHTLC) MaxPayloadLength(uint32) uint32 {
	// 32 + 8 + 8 + 32 + 4 + onionPacketSize
	return 32 + 8 + 8 + 32 + 4 + onionPacketSize
}

var _ Message = (*UpdateAddHTLC)(nil)
