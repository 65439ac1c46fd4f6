package lnwallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/lightninglabs/chancore/shachain"
)

// ValidateCommitmentTx checks that tx has the fixed shape every
// commitment transaction must satisfy before its obscured commitment
// number can be trusted: the right version, a single input spending
// fundingOutpoint, and a (locktime, sequence) pair that decodes to a
// 48-bit obscured field.
func ValidateCommitmentTx(fundingOutpoint wire.OutPoint, tx *wire.MsgTx) (
	ObscuredCommitmentNumber, error) {

	if tx.Version != TxVersionNumberOfCommitmentTxs {
		return 0, InvalidTxVersionForCommitmentTx(tx.Version)
	}

	if len(tx.TxIn) != 1 {
		return 0, &InvalidCommitmentTxError{
			Reason: fmt.Sprintf("expected exactly one input, got %d", len(tx.TxIn)),
		}
	}
	if tx.TxIn[0].PreviousOutPoint != fundingOutpoint {
		return 0, &InvalidCommitmentTxError{
			Reason: "input does not spend the funding outpoint",
		}
	}

	return decodeObscuredField(tx.LockTime, tx.TxIn[0].Sequence)
}

// RecoveredOutput is one output of a broadcast commitment transaction
// this party can now sweep, together with the key and witness type
// needed to spend it.
type RecoveredOutput struct {
	Outpoint wire.OutPoint
	Amount   btcutil.Amount
	Script   []byte

	WitnessType WitnessType
	SignKey     *btcec.PrivateKey

	// CsvDelay is set only for CommitmentTimeLock outputs.
	CsvDelay uint32
}

// Finalize produces the witness that spends this output into sweepTx,
// which the caller has already populated with whatever destination
// outputs and fee it wants; ro supplies everything GenWitnessFunc needs
// to close over a SpendDescriptor for the recovered witness type.
func (ro *RecoveredOutput) Finalize(sweepTx *wire.MsgTx) (wire.TxWitness, error) {
	desc := &SpendDescriptor{
		WitnessScript: ro.Script,
		Output: &wire.TxOut{
			Value:    int64(ro.Amount),
			PkScript: ro.Script,
		},
		PrivKey:         ro.SignKey,
		RelativeTimeout: ro.CsvDelay,
	}

	return ro.WitnessType.GenWitnessFunc(desc)(sweepTx)
}

// TryGetFundsFromRemoteCommitmentTx recognizes our to_remote output on a
// broadcast remote commitment transaction — whether it's the latest
// known remote commitment or an earlier, revoked one — and returns the
// information needed to sweep it.
func TryGetFundsFromRemoteCommitmentTx(cm *Commitments, ourPaymentPriv *btcec.PrivateKey,
	tx *wire.MsgTx) (*RecoveredOutput, error) {

	obscured, err := ValidateCommitmentTx(cm.FundingScriptCoin.Outpoint, tx)
	if err != nil {
		return nil, err
	}
	number := obscured.unobscure(
		cm.IsFunder, cm.LocalChanCfg.PaymentBasePoint, cm.RemoteChanCfg.PaymentBasePoint,
	)

	commitPoint, err := remoteCommitPointAt(cm, number)
	if err != nil {
		return nil, err
	}

	keys := DeriveCommitmentKeys(commitPoint, false, &cm.LocalChanCfg, &cm.RemoteChanCfg)

	toRemoteScript, err := commitScriptUnencumbered(keys.ToRemoteKey)
	if err != nil {
		return nil, err
	}

	found, index := findScriptOutputIndex(tx, toRemoteScript)
	if !found {
		return nil, ErrBalanceBelowDustLimit
	}

	return &RecoveredOutput{
		Outpoint:    wire.OutPoint{Hash: tx.TxHash(), Index: index},
		Amount:      btcutil.Amount(tx.TxOut[index].Value),
		Script:      toRemoteScript,
		WitnessType: CommitmentNoDelay,
		SignKey:     TweakPrivKey(ourPaymentPriv, SingleTweakBytes(commitPoint, ourPaymentPriv.PubKey())),
	}, nil
}

// TryGetFundsFromLocalCommitmentTx recognizes our own to_local_delayed
// output on our own broadcast commitment transaction and returns the
// information needed to sweep it after the CSV delay.
func TryGetFundsFromLocalCommitmentTx(cm *Commitments, ourDelayPriv *btcec.PrivateKey,
	tx *wire.MsgTx) (*RecoveredOutput, error) {

	if _, err := ValidateCommitmentTx(cm.FundingScriptCoin.Outpoint, tx); err != nil {
		return nil, err
	}

	commitPoint := cm.LocalCommit.Keys.CommitPoint
	keys := DeriveCommitmentKeys(commitPoint, true, &cm.LocalChanCfg, &cm.RemoteChanCfg)

	toLocalScript, err := commitScriptToSelf(
		uint32(cm.LocalChanCfg.CsvDelay), keys.ToLocalKey, keys.RevocationKey,
	)
	if err != nil {
		return nil, err
	}
	pkScript, err := witnessScriptHash(toLocalScript)
	if err != nil {
		return nil, err
	}

	found, index := findScriptOutputIndex(tx, pkScript)
	if !found {
		return nil, ErrBalanceBelowDustLimit
	}

	return &RecoveredOutput{
		Outpoint:    wire.OutPoint{Hash: tx.TxHash(), Index: index},
		Amount:      btcutil.Amount(tx.TxOut[index].Value),
		Script:      toLocalScript,
		WitnessType: CommitmentTimeLock,
		SignKey:     TweakPrivKey(ourDelayPriv, SingleTweakBytes(commitPoint, ourDelayPriv.PubKey())),
		CsvDelay:    uint32(cm.LocalChanCfg.CsvDelay),
	}, nil
}

// CreatePenaltyTx assembles the penalty sweep for a revealed, revoked
// remote commitment transaction: both the to_remote output (swept with
// our own payment key) and the to_local output (swept with the derived
// revocation key), when present. Outputs are located in BIP69 (lex)
// ordering and only those clearing remote_params.dust_limit are
// considered.
func CreatePenaltyTx(cm *Commitments, ourPaymentPriv *btcec.PrivateKey,
	ourRevocationBasePriv *btcec.PrivateKey, revokedSecret shachain.Secret,
	tx *wire.MsgTx) ([]*RecoveredOutput, error) {

	if _, err := ValidateCommitmentTx(cm.FundingScriptCoin.Outpoint, tx); err != nil {
		return nil, err
	}

	commitSecretPriv, commitPoint := btcec.PrivKeyFromBytes(revokedSecret[:])

	keys := DeriveCommitmentKeys(commitPoint, false, &cm.LocalChanCfg, &cm.RemoteChanCfg)

	outputs := sortOutputsBIP69(tx.TxOut)

	var recovered []*RecoveredOutput

	toRemoteScript, err := commitScriptUnencumbered(keys.ToRemoteKey)
	if err != nil {
		return nil, err
	}
	if idx, ok := lookupSortedOutput(outputs, tx.TxOut, toRemoteScript, cm.RemoteChanCfg.DustLimit); ok {
		recovered = append(recovered, &RecoveredOutput{
			Outpoint:    wire.OutPoint{Hash: tx.TxHash(), Index: idx},
			Amount:      btcutil.Amount(tx.TxOut[idx].Value),
			Script:      toRemoteScript,
			WitnessType: CommitmentNoDelay,
			SignKey:     TweakPrivKey(ourPaymentPriv, SingleTweakBytes(commitPoint, ourPaymentPriv.PubKey())),
		})
	}

	toLocalScript, err := commitScriptToSelf(
		uint32(cm.RemoteChanCfg.CsvDelay), keys.ToLocalKey, keys.RevocationKey,
	)
	if err != nil {
		return nil, err
	}
	toLocalPkScript, err := witnessScriptHash(toLocalScript)
	if err != nil {
		return nil, err
	}
	if idx, ok := lookupSortedOutput(outputs, tx.TxOut, toLocalPkScript, cm.RemoteChanCfg.DustLimit); ok {
		revocationPriv := DeriveRevocationPrivKey(ourRevocationBasePriv, commitSecretPriv)
		recovered = append(recovered, &RecoveredOutput{
			Outpoint:    wire.OutPoint{Hash: tx.TxHash(), Index: idx},
			Amount:      btcutil.Amount(tx.TxOut[idx].Value),
			Script:      toLocalScript,
			WitnessType: CommitmentRevoke,
			SignKey:     revocationPriv,
		})
	}

	return recovered, nil
}

// remoteCommitPointAt resolves the per-commitment point for an earlier
// remote commitment number: either the revealed secret for a revoked
// state, or the stored point if it's the latest known remote commitment.
func remoteCommitPointAt(cm *Commitments, number CommitmentNumber) (*btcec.PublicKey, error) {
	if secret, ok := cm.RemotePerCommitSecrets.SecretAt(number); ok {
		_, pub := btcec.PrivKeyFromBytes(secret[:])
		return pub, nil
	}

	if number == cm.RemoteCommit.Number {
		return cm.RemoteCommit.Keys.CommitPoint, nil
	}

	return nil, ErrCommitmentNumberFromTheFuture
}

// sortOutputsBIP69 returns the indexes of tx into ascending (value,
// pkScript) order, BIP69's lexicographic output ordering.
func sortOutputsBIP69(outs []*wire.TxOut) []int {
	indexes := make([]int, len(outs))
	for i := range outs {
		indexes[i] = i
	}

	less := func(i, j int) bool {
		a, b := outs[indexes[i]], outs[indexes[j]]
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return lexLess(a.PkScript, b.PkScript)
	}
	for i := 1; i < len(indexes); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			indexes[j], indexes[j-1] = indexes[j-1], indexes[j]
		}
	}

	return indexes
}

func lexLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// lookupSortedOutput finds script among outs (visited in BIP69 order)
// and reports its real index, provided its value clears dustLimit.
func lookupSortedOutput(order []int, outs []*wire.TxOut, script []byte,
	dustLimit btcutil.Amount) (uint32, bool) {

	for _, idx := range order {
		out := outs[idx]
		if len(out.PkScript) == len(script) && string(out.PkScript) == string(script) {
			if btcutil.Amount(out.Value) < dustLimit {
				return 0, false
			}
			return uint32(idx), true
		}
	}
	return 0, false
}
