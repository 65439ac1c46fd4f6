package htlcwire

import (
	"fmt"
	"io"
)

// maxFailReasonLength caps the opaque, onion-encrypted failure reason
// carried in an UpdateFailHTLC. The reason's contents (construction or
// peeling of the onion error packet) are out of scope; this package only
// frames the opaque blob.
const maxFailReasonLength = 65535 - 32 - 8 - 2

// UpdateFailHTLC is sent by one channel party to the other to cancel a
// previously added HTLC, referenced by its ID, instead of settling it.
type UpdateFailHTLC struct {
	// ChanID references an active channel which holds the HTLC to be
	// cancelled.
	ChanID ChannelID

	// ID denotes the exact HTLC stage within the receiving node's
	// commitment transaction to be cancelled.
	ID uint64

	// Reason is the opaque, onion-encrypted failure reason. Its
	// construction is out of scope for this package.
	Reason []byte
}

var _ Message = (*UpdateFailHTLC)(nil)

// Decode deserializes a serialized UpdateFailHTLC stored in the passed
// io.Reader observing the specified protocol version.
//
// This is part of the Message interface.
func (c *UpdateFailHTLC) Decode(r io.Reader, pver uint32) error {
	if err := readElements(r, &c.ChanID, &c.ID); err != nil {
		return err
	}

	var reasonLen uint16
	if err := readElements(r, &reasonLen); err != nil {
		return err
	}
	if int(reasonLen) > maxFailReasonLength {
		return fmt.Errorf("reason length %d exceeds max of %d",
			reasonLen, maxFailReasonLength)
	}

	c.Reason = make([]byte, reasonLen)
	return readElements(r, c.Reason)
}

// Encode serializes the target UpdateFailHTLC into the passed io.Writer
// observing the protocol version specified.
//
// This is part of the Message interface.
func (c *UpdateFailHTLC) Encode(w io.Writer, pver uint32) error {
	if len(c.Reason) > maxFailReasonLength {
		return fmt.Errorf("reason length %d exceeds max of %d",
			len(c.Reason), maxFailReasonLength)
	}

	return writeElements(w,
		c.ChanID,
		c.ID,
		uint16(len(c.Reason)),
		c.Reason,
	)
}

// MsgType returns the integer uniquely identifying this message type on
// the wire.
//
// This is part of the Message interface.
func (c *UpdateFailHTLC) MsgType() MessageType {
	return MsgUpdateFailHTLC
}

// MaxPayloadLength returns the maximum allowed payload size for a
// UpdateFailHTLC complete message observing the specified protocol
// version.
//
// This is part of the Message interface.
func (c *UpdateFailHTLC) MaxPayloadLength(uint32) uint32 {
	return 65535
}

var _ Message = (*UpdateFailHTLC)(nil)
