package lnwallet

import (
	"crypto/sha256"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/lightninglabs/chancore/htlcwire"
)

// revocationHash derives the value committed into an HTLC script's
// revoke branch for the commitment built at commitPoint: the SHA-256 of
// commitPoint's 33-byte compressed serialization, which is therefore the
// preimage a revoke-spend witness presents. No second secret is
// introduced.
func revocationHash(commitPoint *btcec.PublicKey) [32]byte {
	return sha256.Sum256(commitPoint.SerializeCompressed())
}

// buildCommitmentTx constructs one party's version of a commitment
// transaction together with its HTLC sub-transactions, following
// make_local_txs/make_remote_txs: given the side's parameters, the
// funding coin, the commitment number and the per-commitment point in
// play, it deterministically derives the four-way commitment pubkey set
// and produces the commitment tx plus its HTLC-timeout/HTLC-success
// descendants.
func buildCommitmentTx(cm *Commitments, number CommitmentNumber, isOurs bool,
	commitPoint *btcec.PublicKey, ourBalance, theirBalance htlcwire.MilliSatoshi,
	htlcs []HTLC) (*CommitmentTxn, error) {

	keys := DeriveCommitmentKeys(commitPoint, isOurs, &cm.LocalChanCfg, &cm.RemoteChanCfg)

	tx := wire.NewMsgTx(TxVersionNumberOfCommitmentTxs)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: cm.FundingScriptCoin.Outpoint})

	locktime, sequence := ObscureCommitmentNumber(
		number, cm.IsFunder, cm.LocalChanCfg.PaymentBasePoint,
		cm.RemoteChanCfg.PaymentBasePoint,
	)
	tx.LockTime = locktime
	tx.TxIn[0].Sequence = sequence

	var ownerCfg, counterCfg *ChannelConfig
	if isOurs {
		ownerCfg, counterCfg = &cm.LocalChanCfg, &cm.RemoteChanCfg
	} else {
		ownerCfg, counterCfg = &cm.RemoteChanCfg, &cm.LocalChanCfg
	}

	ownerBalance, counterBalance := ourBalance, theirBalance
	if !isOurs {
		ownerBalance, counterBalance = theirBalance, ourBalance
	}

	if ownerBalance.ToSatoshis() >= ownerCfg.DustLimit {
		toLocalScript, err := commitScriptToSelf(
			uint32(ownerCfg.CsvDelay), keys.ToLocalKey, keys.RevocationKey,
		)
		if err != nil {
			return nil, err
		}
		pkScript, err := witnessScriptHash(toLocalScript)
		if err != nil {
			return nil, err
		}
		tx.AddTxOut(wire.NewTxOut(int64(ownerBalance.ToSatoshis()), pkScript))
	}

	if counterBalance.ToSatoshis() >= counterCfg.DustLimit {
		toRemoteScript, err := commitScriptUnencumbered(keys.ToRemoteKey)
		if err != nil {
			return nil, err
		}
		tx.AddTxOut(wire.NewTxOut(int64(counterBalance.ToSatoshis()), toRemoteScript))
	}

	var htlcTxns []HtlcTx
	for _, htlc := range htlcs {
		dustLimit := ownerCfg.DustLimit
		if htlc.Amount.ToSatoshis() < dustLimit {
			continue
		}

		htlcScript, isTimeout, err := htlcOutputScript(ownerCfg, keys, isOurs, htlc, commitPoint)
		if err != nil {
			return nil, err
		}

		pkScript, err := witnessScriptHash(htlcScript)
		if err != nil {
			return nil, err
		}
		outputIndex := uint32(len(tx.TxOut))
		tx.AddTxOut(wire.NewTxOut(int64(htlc.Amount.ToSatoshis()), pkScript))

		secondLevel, err := buildSecondLevelHtlcTx(
			htlc, htlcScript, outputIndex, isTimeout, ownerCfg.CsvDelay,
			cm.FeePerKw,
		)
		if err != nil {
			return nil, err
		}

		htlcTxns = append(htlcTxns, HtlcTx{
			Tx:            secondLevel,
			WhichInput:    outputIndex,
			IsTimeout:     isTimeout,
			HTLC:          htlc,
			WitnessScript: htlcScript,
		})
	}

	sortBothHtlcs(htlcTxns)

	return &CommitmentTxn{
		Number:       number,
		Tx:           tx,
		HTLCs:        htlcTxns,
		Keys:         keys,
		OurBalance:   ourBalance,
		TheirBalance: theirBalance,
		FeePerKw:     cm.FeePerKw,
	}, nil
}

// htlcOutputScript picks senderHTLCScript or receiverHTLCScript depending
// on who offered htlc (HTLCDirection is always local-relative) and whose
// commitment is being built, and reports whether the owner of this
// commitment is the HTLC's offerer (and therefore spends it via the
// timeout path rather than the redeem path).
func htlcOutputScript(ownerCfg *ChannelConfig, keys *CommitmentKeyRing,
	isOurs bool, htlc HTLC, commitPoint *btcec.PublicKey) ([]byte, bool, error) {

	ownerIsOfferer := (isOurs && htlc.Direction == Out) || (!isOurs && htlc.Direction == In)

	revokeHash := revocationHash(commitPoint)

	// The offerer is always whoever HTLCDirection names (Out => local,
	// In => remote), regardless of whose commitment is being built.
	senderKey, receiverKey := keys.RemoteHtlcKey, keys.LocalHtlcKey
	if htlc.Direction == Out {
		senderKey, receiverKey = keys.LocalHtlcKey, keys.RemoteHtlcKey
	}

	if ownerIsOfferer {
		script, err := senderHTLCScript(
			htlc.CltvExpiry, uint32(ownerCfg.CsvDelay), senderKey,
			receiverKey, revokeHash[:], htlc.PaymentHash[:],
		)
		return script, true, err
	}

	script, err := receiverHTLCScript(
		htlc.CltvExpiry, uint32(ownerCfg.CsvDelay), senderKey, receiverKey,
		revokeHash[:], htlc.PaymentHash[:],
	)
	return script, false, err
}

// htlcTimeoutFee returns the fee, in satoshis, an HTLC-timeout transaction
// must pay at feePerKw, per size.go's HtlcTimeoutWeight estimate.
func htlcTimeoutFee(feePerKw btcutil.Amount) btcutil.Amount {
	return (feePerKw * HtlcTimeoutWeight) / 1000
}

// htlcSuccessFee returns the fee, in satoshis, an HTLC-success transaction
// must pay at feePerKw, per size.go's HtlcSuccessWeight estimate.
func htlcSuccessFee(feePerKw btcutil.Amount) btcutil.Amount {
	return (feePerKw * HtlcSuccessWeight) / 1000
}

// buildSecondLevelHtlcTx constructs the skeleton HTLC-timeout or
// HTLC-success sub-transaction descending from outputIndex of the parent
// commitment transaction, its single output paying back the HTLC's value
// net of a second-level fee computed from size.go's weight estimate.
func buildSecondLevelHtlcTx(htlc HTLC, witnessScript []byte, outputIndex uint32,
	isTimeout bool, csvDelay uint16, feePerKw btcutil.Amount) (*wire.MsgTx, error) {

	tx := wire.NewMsgTx(TxVersionNumberOfCommitmentTxs)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: outputIndex},
		Sequence:         lockTimeToSequence(false, uint32(csvDelay)),
	})

	var fee btcutil.Amount
	if isTimeout {
		tx.LockTime = htlc.CltvExpiry
		fee = htlcTimeoutFee(feePerKw)
	} else {
		fee = htlcSuccessFee(feePerKw)
	}

	amt := htlc.Amount.ToSatoshis() - fee
	if amt < 0 {
		amt = 0
	}

	outputScript, err := witnessScriptHash(witnessScript)
	if err != nil {
		return nil, err
	}
	tx.AddTxOut(wire.NewTxOut(int64(amt), outputScript))

	return tx, nil
}

// sortBothHtlcs sorts the combined HTLC-timeout and HTLC-success
// sub-transactions ascending by the output index of the parent
// commitment transaction they spend — the order the peer's HTLC
// signatures must match.
func sortBothHtlcs(htlcs []HtlcTx) {
	sort.Slice(htlcs, func(i, j int) bool {
		return htlcs[i].WhichInput < htlcs[j].WhichInput
	})
}

// isAlreadySent reports whether a fulfill/fail/fail_malformed update
// already staged in proposed targets htlc.
func isAlreadySent(htlc HTLC, proposed []PendingUpdate) bool {
	for _, update := range proposed {
		switch update.Kind {
		case updateFulfill, updateFail, updateFailMalformed:
			if update.HtlcID == htlc.ID {
				return true
			}
		}
	}
	return false
}

// maxFeeRateMismatchRatio bounds how far a peer's proposed fee rate may
// diverge from our own observed feerate before check_update_fee rejects
// it outright.
const maxFeeRateMismatchRatio = 10

// checkUpdateFee rejects a peer-proposed fee rate that diverges from
// localFeePerKw by more than maxFeeRateMismatchRatio.
func checkUpdateFee(proposed, localFeePerKw btcutil.Amount) error {
	if localFeePerKw == 0 {
		return nil
	}

	ratio := float64(proposed) / float64(localFeePerKw)
	if ratio > maxFeeRateMismatchRatio || ratio < 1.0/maxFeeRateMismatchRatio {
		return &TransactionError{Reason: "peer fee rate diverges too far from local feerate"}
	}
	return nil
}
