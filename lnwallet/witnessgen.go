package lnwallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// WitnessType determines how an output's witness will be generated. Each
// value corresponds to exactly one of the three commitment spend paths
// recovery.go's output-recognition helpers ever produce; the HTLC-script
// spend paths in script_utils.go are exercised directly by its own tests
// instead, since nothing in this tree recovers HTLC outputs from a
// broadcast commitment transaction.
type WitnessType uint16

const (
	// CommitmentTimeLock spends the CSV-delayed to_local output of a
	// commitment transaction after the delay has elapsed.
	CommitmentTimeLock WitnessType = 0

	// CommitmentNoDelay spends the counterparty's unencumbered P2WPKH
	// to_remote output immediately.
	CommitmentNoDelay WitnessType = 1

	// CommitmentRevoke sweeps the to_local output of a commitment the
	// counterparty revoked, given the derived revocation private key.
	CommitmentRevoke WitnessType = 2
)

// SpendDescriptor carries everything a WitnessGenerator needs to produce a
// witness for one input of a sweep transaction. Unlike the teacher's
// Signer/SignDescriptor split, the private key travels with the
// descriptor itself, since recovery.go's callers always hold it directly
// and there's no remote signer to defer to.
type SpendDescriptor struct {
	// WitnessScript is the redeem script of the output being spent.
	WitnessScript []byte

	// Output is the output being spent.
	Output *wire.TxOut

	// PrivKey signs the sweep input: the self key or the derived
	// revocation key, depending on WitnessType.
	PrivKey *btcec.PrivateKey

	// RelativeTimeout is the CSV delay enforced by CommitmentTimeLock.
	// Unused by the no-delay and revoke paths.
	RelativeTimeout uint32
}

// WitnessGenerator produces the final witness stack for one input of a
// sweep transaction, given the transaction under construction.
type WitnessGenerator func(sweepTx *wire.MsgTx) (wire.TxWitness, error)

// GenWitnessFunc returns the WitnessGenerator for this spend path, closed
// over the supplied descriptor.
func (wt WitnessType) GenWitnessFunc(desc *SpendDescriptor) WitnessGenerator {
	amt := btcutil.Amount(desc.Output.Value)
	script := desc.WitnessScript

	return func(sweepTx *wire.MsgTx) (wire.TxWitness, error) {
		switch wt {
		case CommitmentTimeLock:
			return commitSpendTimeout(
				script, amt, desc.RelativeTimeout, desc.PrivKey,
				sweepTx,
			)
		case CommitmentNoDelay:
			return commitSpendNoDelay(script, amt, desc.PrivKey, sweepTx)
		case CommitmentRevoke:
			return commitSpendRevoke(script, amt, desc.PrivKey, sweepTx)
		default:
			return nil, fmt.Errorf("unknown witness type: %v", wt)
		}
	}
}
