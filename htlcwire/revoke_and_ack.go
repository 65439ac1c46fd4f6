package htlcwire

import "io"

// RevokeAndAck is sent in response to a CommitSig once its new commitment
// has been validated and stored. It reveals the secret for the just
// superseded commitment (irrevocably forfeiting it) and advances the
// sender's per-commitment point for the commitment after next.
type RevokeAndAck struct {
	// ChanID references the channel being revoked.
	ChanID ChannelID

	// Revocation is the per-commitment secret for the commitment
	// transaction just superseded, as produced by shachain.Producer.
	Revocation [32]byte

	// NextPerCommitmentPoint is the per-commitment point the sender
	// will use for the commitment after the one it just signed.
	NextPerCommitmentPoint [33]byte
}

var _ Message = (*RevokeAndAck)(nil)

// Decode deserializes a serialized RevokeAndAck stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *RevokeAndAck) Decode(r io.Reader, pver uint32) error {
	return readElements(r,
		&c.ChanID,
		c.Revocation[:],
		c.NextPerCommitmentPoint[:],
	)
}

// Encode serializes the target RevokeAndAck into the passed io.Writer
// observing the protocol version specified.
//
// This is part of the Message interface.
func (c *RevokeAndAck) Encode(w io.Writer, pver uint32) error {
	return writeElements(w,
		c.ChanID,
		c.Revocation[:],
		c.NextPerCommitmentPoint[:],
	)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *RevokeAndAck) MsgType() MessageType {
	return MsgRevokeAndAck
}

// MaxPayloadLength returns the maximum allowed payload size for a
// RevokeAndAck complete message observing the specified protocol version.
//
// This is part of the Message interface.
func (c *RevokeAndAck) MaxPayloadLength(uint32) uint32 {
	// 32 + 32 + 33
	return 97
}

var _ Message = (*RevokeAndAck)(nil)
