package lnwallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/lightninglabs/chancore/htlcwire"
)

// fixedSigFromSignature packs an ECDSA signature into the wire's 64-byte
// raw (r, s) encoding, left-padding each half to 32 bytes. The wire never
// carries DER: it reaches into the curve signature's own DER
// serialization only to strip the ASN.1 framing and the sign-guarding
// leading zero bytes DER adds.
func fixedSigFromSignature(sig *ecdsa.Signature) (htlcwire.Sig, error) {
	var fixed htlcwire.Sig

	der := sig.Serialize()
	if len(der) < 8 || der[0] != 0x30 {
		return fixed, fmt.Errorf("malformed DER signature")
	}

	rLen := int(der[3])
	rStart := 4
	if rStart+rLen > len(der) {
		return fixed, fmt.Errorf("malformed DER signature: r overruns buffer")
	}
	rBytes := trimLeadingZeroes(der[rStart : rStart+rLen])

	sLenIdx := rStart + rLen + 1
	if sLenIdx >= len(der) {
		return fixed, fmt.Errorf("malformed DER signature: missing s")
	}
	sLen := int(der[sLenIdx])
	sStart := sLenIdx + 1
	if sStart+sLen > len(der) {
		return fixed, fmt.Errorf("malformed DER signature: s overruns buffer")
	}
	sBytes := trimLeadingZeroes(der[sStart : sStart+sLen])

	if len(rBytes) > 32 || len(sBytes) > 32 {
		return fixed, fmt.Errorf("signature component exceeds 32 bytes")
	}

	copy(fixed[32-len(rBytes):32], rBytes)
	copy(fixed[64-len(sBytes):64], sBytes)

	return fixed, nil
}

// signatureFromFixed reverses fixedSigFromSignature, re-wrapping the raw
// (r, s) halves in the minimal DER encoding ecdsa.ParseDERSignature
// expects.
func signatureFromFixed(fixed htlcwire.Sig) (*ecdsa.Signature, error) {
	r := derEncodeInt(fixed[:32])
	s := derEncodeInt(fixed[32:])

	body := append(append([]byte{}, r...), s...)
	der := append([]byte{0x30, byte(len(body))}, body...)

	return ecdsa.ParseDERSignature(der)
}

// derEncodeInt DER-encodes a 32-byte unsigned big-endian integer,
// stripping leading zero bytes and re-adding a single guard zero byte
// whenever the high bit would otherwise flip the value negative.
func derEncodeInt(b []byte) []byte {
	v := trimLeadingZeroes(b)
	if len(v) == 0 {
		v = []byte{0}
	}
	if v[0]&0x80 != 0 {
		v = append([]byte{0}, v...)
	}
	return append([]byte{0x02, byte(len(v))}, v...)
}

func trimLeadingZeroes(b []byte) []byte {
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	return b
}
