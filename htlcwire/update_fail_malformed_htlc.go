package htlcwire

import "io"

// UpdateFailMalformedHTLC is sent instead of UpdateFailHTLC when the
// receiving node couldn't even parse the onion packet well enough to
// produce a properly encrypted failure reason — for instance, because the
// packet's own HMAC didn't validate. It lets the failure be attributed
// without requiring the failing hop to have decrypted anything.
type UpdateFailMalformedHTLC struct {
	// ChanID references an active channel which holds the HTLC to be
	// cancelled.
	ChanID ChannelID

	// ID denotes the exact HTLC stage within the receiving node's
	// commitment transaction to be cancelled.
	ID uint64

	// ShaOnionBlob is the SHA-256 of the onion blob that couldn't be
	// processed, letting the origin correlate the failure.
	ShaOnionBlob [32]byte

	// FailureCode is the reason code explaining why the onion packet
	// could not be processed.
	FailureCode uint16
}

var _ Message = (*UpdateFailMalformedHTLC)(nil)

// Decode deserializes a serialized UpdateFailMalformedHTLC stored in the
// passed io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *UpdateFailMalformedHTLC) Decode(r io.Reader, pver uint32) error {
	return readElements(r,
		&c.ChanID,
		&c.ID,
		c.ShaOnionBlob[:],
		&c.FailureCode,
	)
}

// Encode serializes the target UpdateFailMalformedHTLC into the passed
// io.Writer observing the protocol version specified.
//
// This is part of the Message interface.
func (c *UpdateFailMalformedHTLC) Encode(w io.Writer, pver uint32) error {
	return writeElements(w,
		c.ChanID,
		c.ID,
		c.ShaOnionBlob[:],
		c.FailureCode,
	)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *UpdateFailMalformedHTLC) MsgType() MessageType {
	return MsgUpdateFailMalformedHTLC
}

// MaxPayloadLength returns the maximum allowed payload size for an
// UpdateFailMalformedHTLC complete message observing the specified
// protocol version.
//
// This is part of the Message interface.
func (c *UpdateFailMalformedHTLC) MaxPayloadLength(uint32) uint32 {
	// 32 + 8 + 32 + 2
	return 74
}

var _ Message = (*UpdateFailMalformedHTLC)(nil)
