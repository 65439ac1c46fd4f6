package lnwallet

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/lightninglabs/chancore/htlcwire"
)

// CommitmentSpec is the side-agnostic view the reducer operates over: the
// HTLC multiset locked into a prospective commitment, the two parties'
// settled balances, and the fee rate that commitment would pay.
// ("current_spec"/"next_spec" in the design doc.)
type CommitmentSpec struct {
	HTLCs map[uint64]HTLC

	ToLocalMsat  htlcwire.MilliSatoshi
	ToRemoteMsat htlcwire.MilliSatoshi

	FeePerKw btcutil.Amount
}

// Clone returns a deep copy, since Reduce must never mutate the spec it
// was handed — the caller's current_spec stays valid even if Reduce
// fails partway through.
func (s *CommitmentSpec) Clone() *CommitmentSpec {
	htlcs := make(map[uint64]HTLC, len(s.HTLCs))
	for id, htlc := range s.HTLCs {
		htlcs[id] = htlc
	}
	return &CommitmentSpec{
		HTLCs:        htlcs,
		ToLocalMsat:  s.ToLocalMsat,
		ToRemoteMsat: s.ToRemoteMsat,
		FeePerKw:     s.FeePerKw,
	}
}

// commitTxFee computes the fee a commitment transaction built from spec
// would pay, counting only the HTLC outputs that clear dustLimit —
// grounded on size.go's estimateCommitTxWeight, the same weight model the
// teacher's commitment construction uses for fee calculation.
func commitTxFee(dustLimit btcutil.Amount, spec *CommitmentSpec) btcutil.Amount {
	htlcCount := 0
	for _, htlc := range spec.HTLCs {
		if htlc.Amount.ToSatoshis() >= dustLimit {
			htlcCount++
		}
	}

	weight := estimateCommitTxWeight(htlcCount, false)
	return btcutil.Amount((int64(spec.FeePerKw) * weight) / 1000)
}

// applyUpdate applies a single staged update to spec in place. fromFunder
// tells whether the party whose changes buffer this update came from is
// the channel funder, since only the funder may originate update_fee.
func applyUpdate(spec *CommitmentSpec, update PendingUpdate, fromFunder bool) error {
	switch update.Kind {
	case updateAdd:
		htlc := *update.Add
		spec.HTLCs[htlc.ID] = htlc

		switch htlc.Direction {
		case Out:
			spec.ToLocalMsat -= htlc.Amount
		case In:
			spec.ToRemoteMsat -= htlc.Amount
		}

	case updateFulfill, updateFail, updateFailMalformed:
		htlc, ok := spec.HTLCs[update.HtlcID]
		if !ok {
			return &TransactionError{Reason: "unknown htlc id in reducer"}
		}
		delete(spec.HTLCs, update.HtlcID)

		settled := update.Kind == updateFulfill
		switch htlc.Direction {
		case Out:
			if settled {
				spec.ToRemoteMsat += htlc.Amount
			} else {
				spec.ToLocalMsat += htlc.Amount
			}
		case In:
			if settled {
				spec.ToLocalMsat += htlc.Amount
			} else {
				spec.ToRemoteMsat += htlc.Amount
			}
		}

	case updateFee:
		if !fromFunder {
			return &TransactionError{Reason: "update_fee from non-funder"}
		}
		spec.FeePerKw = update.FeePerKw
	}

	return nil
}

// Reduce folds acked_updates_from_peer then proposed_updates_from_self
// onto current_spec, in order, returning the resulting next_spec.
// Applying [u1, u2] is equivalent to applying [u1] then [u2] — each
// update only ever touches the single HTLC or fee field it names, so
// folding is associative regardless of how the caller chunks the update
// lists.
func Reduce(currentSpec *CommitmentSpec, ackedFromPeer []PendingUpdate,
	peerIsFunder bool, proposedFromSelf []PendingUpdate,
	selfIsFunder bool) (*CommitmentSpec, error) {

	next := currentSpec.Clone()

	for _, update := range ackedFromPeer {
		if err := applyUpdate(next, update, peerIsFunder); err != nil {
			return nil, err
		}
	}
	for _, update := range proposedFromSelf {
		if err := applyUpdate(next, update, selfIsFunder); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// CheckReserve verifies that, after fees, spec's to_remote balance has
// not fallen below the counterparty-enforced channel reserve. The
// to_local balance is not checked.
// dustLimit and reserve are the values the *other* party's
// ChannelConfig names, since each side's commitment transaction is built
// and constrained from its own point of view.
func CheckReserve(spec *CommitmentSpec, dustLimit, reserve btcutil.Amount) error {
	fee := commitTxFee(dustLimit, spec)

	toRemote := spec.ToRemoteMsat.ToSatoshis()
	if toRemote-reserve-fee < 0 {
		missing := reserve + fee - toRemote
		return &CannotAffordFeeError{
			Reserve: int64(reserve),
			Fee:     int64(fee),
			Missing: int64(missing),
		}
	}

	return nil
}
