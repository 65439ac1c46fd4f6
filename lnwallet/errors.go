package lnwallet

import "fmt"

// Sentinel errors returned by the commitment engine and reducer. These
// mirror the teacher's package-level Err* sentinel style (see channel.go's
// ErrChanClosing/ErrNoWindow/etc.) rather than a generic error string,
// since the engine's errors are data the caller branches on, not just
// messages to log.
var (
	// ErrHtlcAlreadySent is returned when a fulfill/fail/fail_malformed
	// is requested for an HTLC that already has a pending resolution in
	// the local changes buffer.
	ErrHtlcAlreadySent = fmt.Errorf("htlc already has a pending resolution")

	// ErrUnknownHtlcID is returned when an operation references an HTLC
	// id that isn't present in the opposite party's cross-signed set.
	ErrUnknownHtlcID = fmt.Errorf("unknown htlc id")

	// ErrInvalidPaymentPreimage is returned when a fulfill's preimage
	// doesn't hash to the HTLC's payment hash.
	ErrInvalidPaymentPreimage = fmt.Errorf("invalid payment preimage")

	// ErrInvalidFailureCode is returned when a fail_malformed's failure
	// code is missing the BADONION bit.
	ErrInvalidFailureCode = fmt.Errorf("malformed failure code missing BADONION bit")

	// ErrApiMisuse is returned when update_fee is proposed by a party
	// that isn't the channel funder.
	ErrApiMisuse = fmt.Errorf("update_fee may only be sent by the channel funder")

	// ErrCanNotSignBeforeRevocation is returned by send_commit when the
	// remote commitment chain hasn't yet been revoked.
	ErrCanNotSignBeforeRevocation = fmt.Errorf("cannot sign new commitment before receiving prior revocation")

	// ErrReceivedCommitSigWithNoChanges is returned by receive_commit
	// when there are no unacknowledged remote-originated changes to
	// commit to.
	ErrReceivedCommitSigWithNoChanges = fmt.Errorf("received commitment_signed with no pending changes")

	// ErrCommitmentNumberFromTheFuture is returned by
	// try_get_funds_from_remote_commitment_tx when the obscured
	// commitment number in the broadcast tx is neither a known revoked
	// state nor the latest known remote commitment.
	ErrCommitmentNumberFromTheFuture = fmt.Errorf("commitment number is ahead of all known remote states")

	// ErrBalanceBelowDustLimit is returned when the output being
	// recovered isn't present on the commitment transaction, because
	// its value fell below the dust limit.
	ErrBalanceBelowDustLimit = fmt.Errorf("output value is below dust limit")
)

// HtlcSignatureError reports an individual HTLC signature failure
// encountered while validating a commitment_signed message.
// receive_commit checks the signature of every HTLC but returns only the
// error for the first failing one (lowest sorted index); later failures
// in the same message are not reported.
type HtlcSignatureError struct {
	// HtlcIndex is the offset into the sorted HTLC tx list this error
	// applies to.
	HtlcIndex int

	// Err is the underlying signature validation failure.
	Err error
}

func (e *HtlcSignatureError) Error() string {
	return fmt.Sprintf("htlc signature invalid at index %d: %v", e.HtlcIndex, e.Err)
}

func (e *HtlcSignatureError) Unwrap() error { return e.Err }

// SignatureCountMismatchError is returned by receive_commit when the
// number of HTLC signatures in a commitment_signed message doesn't match
// the number of HTLC outputs expected on the new commitment.
type SignatureCountMismatchError struct {
	Expected int
	Got      int
}

func (e *SignatureCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d htlc signatures, got %d", e.Expected, e.Got)
}

// CannotAffordFeeError is returned by send_fee/receive_fee when the
// proposed fee rate would push a party's balance below its
// counterparty's channel reserve.
type CannotAffordFeeError struct {
	Reserve int64
	Fee     int64
	Missing int64
}

func (e *CannotAffordFeeError) Error() string {
	return fmt.Sprintf("cannot afford fee: reserve=%d fee=%d missing=%d",
		e.Reserve, e.Fee, e.Missing)
}

// TransactionError is returned by the spec reducer when an update can't
// be applied: an unknown HTLC id, or an update_fee from the non-funder.
// Reduce does not check channel reserves; a reserve shortfall is reported
// separately by CheckReserve as a CannotAffordFeeError, and only for the
// to_remote balance. TransactionError also reports a rejected peer fee
// rate (checkUpdateFee) and a signature that does not verify.
type TransactionError struct {
	Reason string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error: %s", e.Reason)
}

// InvalidCommitmentTxError reports why validate_commitment_tx rejected a
// candidate commitment transaction.
type InvalidCommitmentTxError struct {
	Reason string
}

func (e *InvalidCommitmentTxError) Error() string {
	return fmt.Sprintf("invalid commitment tx: %s", e.Reason)
}

// InvalidTxVersionForCommitmentTx is a specialization of
// InvalidCommitmentTxError raised when the transaction's version field
// doesn't match TxVersionNumberOfCommitmentTxs.
func InvalidTxVersionForCommitmentTx(version int32) error {
	return &InvalidCommitmentTxError{
		Reason: fmt.Sprintf("tx version %d != expected %d", version,
			TxVersionNumberOfCommitmentTxs),
	}
}
