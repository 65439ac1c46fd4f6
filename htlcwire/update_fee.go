package htlcwire

import "io"

// UpdateFee is sent by the channel funder to propose a new feerate for
// the commitment transaction. Like an HTLC, it doesn't take effect until
// it's included in a commitment signed by both sides.
type UpdateFee struct {
	// ChanID references the channel this fee update applies to.
	ChanID ChannelID

	// FeePerKw is the proposed fee rate, expressed in satoshis per
	// 1000 weight units.
	FeePerKw uint32
}

var _ Message = (*UpdateFee)(nil)

// Decode deserializes a serialized UpdateFee stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *UpdateFee) Decode(r io.Reader, pver uint32) error {
	return readElements(r, &c.ChanID, &c.FeePerKw)
}

// Encode serializes the target UpdateFee into the passed io.Writer
// observing the protocol version specified.
//
// This is part of the Message interface.
func (c *UpdateFee) Encode(w io.Writer, pver uint32) error {
	return writeElements(w, c.ChanID, c.FeePerKw)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *UpdateFee) MsgType() MessageType {
	return MsgUpdateFee
}

// MaxPayloadLength returns the maximum allowed payload size for an
// UpdateFee complete message observing the specified protocol version.
//
// This is part of the Message interface.
func (c *UpdateFee) MaxPayloadLength(uint32) uint32 {
	// 32 + 4
	return 36
}

var _ Message = (*UpdateFee)(nil)
