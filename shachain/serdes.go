package shachain

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ToBytes serializes a Store as: 1 byte bucket count, then one 41-byte
// record per occupied bucket (1 byte bucket number, 8 byte index, 32 byte
// secret). This mirrors the node layout the teacher's elkrem package used
// for its receiver tree, adapted to shachain's bucket indexing.
func (s *Store) ToBytes() ([]byte, error) {
	var occupied []uint8
	for i, elem := range s.buckets {
		if elem != nil {
			occupied = append(occupied, uint8(i))
		}
	}

	if len(occupied) > numBuckets {
		return nil, fmt.Errorf("shachain store has %d buckets, max %d",
			len(occupied), numBuckets)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, uint8(len(occupied))); err != nil {
		return nil, err
	}

	for _, bucket := range occupied {
		elem := s.buckets[bucket]

		if err := binary.Write(&buf, binary.BigEndian, bucket); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.BigEndian, elem.index); err != nil {
			return nil, err
		}
		if _, err := buf.Write(elem.secret[:]); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// StoreFromBytes deserializes a Store previously written by ToBytes.
func StoreFromBytes(b []byte) (*Store, error) {
	s := NewStore()
	if len(b) == 0 {
		return s, nil
	}

	buf := bytes.NewBuffer(b)

	numRecords, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}
	if numRecords > numBuckets {
		return nil, fmt.Errorf("read invalid bucket count %d, max %d",
			numRecords, numBuckets)
	}
	if buf.Len() != int(numRecords)*41 {
		return nil, fmt.Errorf("remaining buffer wrong size, expected %d "+
			"got %d", int(numRecords)*41, buf.Len())
	}

	for i := 0; i < int(numRecords); i++ {
		var bucket uint8
		if err := binary.Read(buf, binary.BigEndian, &bucket); err != nil {
			return nil, err
		}
		if bucket >= numBuckets {
			return nil, fmt.Errorf("read invalid bucket number %d", bucket)
		}

		var index uint64
		if err := binary.Read(buf, binary.BigEndian, &index); err != nil {
			return nil, err
		}

		var secret Secret
		if n := copy(secret[:], buf.Next(32)); n != 32 {
			return nil, fmt.Errorf("%d byte secret, expected 32", n)
		}

		s.buckets[bucket] = &storeElement{index: index, secret: secret}
	}

	return s, nil
}
