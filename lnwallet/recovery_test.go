package lnwallet

import (
	"testing"

	"github.com/btcsuite/btcd/wire"

	"github.com/lightninglabs/chancore/shachain"
)

// TestRecoveredOutputFinalize checks that the witness Finalize produces
// for a recognized to_local output actually satisfies the output's
// witness script, end to end from try_get_funds_from_local_commitment_tx
// through GenWitnessFunc.
func TestRecoveredOutputFinalize(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	spec := specFromCommit(&alice.cm.LocalCommit)
	commit, err := buildCommitmentTx(
		alice.cm, 0, true, alice.cm.LocalCommit.Keys.CommitPoint,
		spec.ToLocalMsat, spec.ToRemoteMsat, specHtlcs(spec),
	)
	if err != nil {
		t.Fatalf("unable to build commitment tx: %v", err)
	}

	aliceDelayPriv := keyFromLabel("alice-delay")
	recovered, err := TryGetFundsFromLocalCommitmentTx(alice.cm, aliceDelayPriv, commit.Tx)
	if err != nil {
		t.Fatalf("try_get_funds_from_local_commitment_tx failed: %v", err)
	}

	pkScript, err := witnessScriptHash(recovered.Script)
	if err != nil {
		t.Fatalf("unable to hash witness script: %v", err)
	}

	sweepTx := wire.NewMsgTx(2)
	sweepTx.AddTxIn(wire.NewTxIn(&recovered.Outpoint, nil, nil))
	sweepTx.AddTxOut(&wire.TxOut{PkScript: pkScript, Value: int64(recovered.Amount) - 500})

	witness, err := recovered.Finalize(sweepTx)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness

	executeScript(t, pkScript, sweepTx, int64(recovered.Amount))
}

// TestValidateCommitmentTxRejectsWrongVersion is §8 scenario 7: a
// candidate commitment transaction with the wrong version field must be
// rejected outright, before any obscured-number decoding is attempted.
func TestValidateCommitmentTxRejectsWrongVersion(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: alice.cm.FundingScriptCoin.Outpoint})

	_, err := ValidateCommitmentTx(alice.cm.FundingScriptCoin.Outpoint, tx)
	if _, ok := err.(*InvalidCommitmentTxError); !ok {
		t.Fatalf("expected *InvalidCommitmentTxError, got %T: %v", err, err)
	}
}

// TestValidateCommitmentTxRejectsWrongInput checks that a transaction
// spending something other than the channel's funding outpoint is
// rejected even with a correct version.
func TestValidateCommitmentTxRejectsWrongInput(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	tx := wire.NewMsgTx(TxVersionNumberOfCommitmentTxs)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 9}})

	_, err := ValidateCommitmentTx(alice.cm.FundingScriptCoin.Outpoint, tx)
	if _, ok := err.(*InvalidCommitmentTxError); !ok {
		t.Fatalf("expected *InvalidCommitmentTxError, got %T: %v", err, err)
	}
}

// TestValidateCommitmentTxAccepts checks that a transaction built by
// buildCommitmentTx round-trips through ValidateCommitmentTx, recovering
// the same commitment number it was built with.
func TestValidateCommitmentTxAccepts(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	spec := specFromCommit(&alice.cm.LocalCommit)
	commit, err := buildCommitmentTx(
		alice.cm, 0, true, alice.cm.LocalCommit.Keys.CommitPoint,
		spec.ToLocalMsat, spec.ToRemoteMsat, specHtlcs(spec),
	)
	if err != nil {
		t.Fatalf("unable to build commitment tx: %v", err)
	}

	obscured, err := ValidateCommitmentTx(alice.cm.FundingScriptCoin.Outpoint, commit.Tx)
	if err != nil {
		t.Fatalf("validate_commitment_tx rejected a well-formed tx: %v", err)
	}

	number := obscured.unobscure(
		alice.cm.IsFunder, alice.cm.LocalChanCfg.PaymentBasePoint,
		alice.cm.RemoteChanCfg.PaymentBasePoint,
	)
	if number != 0 {
		t.Fatalf("recovered commitment number = %d, want 0", number)
	}
}

// TestTryGetFundsFromRemoteCommitmentTx checks that the to_remote output
// on a broadcast remote commitment transaction is recognized and paired
// with the correctly tweaked signing key.
func TestTryGetFundsFromRemoteCommitmentTx(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	// Bob's own commitment transaction, as alice would see it broadcast.
	bobSpec := specFromCommit(&bob.cm.LocalCommit)
	bobCommit, err := buildCommitmentTx(
		bob.cm, 0, true, bob.cm.LocalCommit.Keys.CommitPoint,
		bobSpec.ToLocalMsat, bobSpec.ToRemoteMsat, specHtlcs(bobSpec),
	)
	if err != nil {
		t.Fatalf("unable to build bob's commitment tx: %v", err)
	}

	alicePaymentPriv := keyFromLabel("alice-payment")
	recovered, err := TryGetFundsFromRemoteCommitmentTx(alice.cm, alicePaymentPriv, bobCommit.Tx)
	if err != nil {
		t.Fatalf("try_get_funds_from_remote_commitment_tx failed: %v", err)
	}
	if recovered.WitnessType != CommitmentNoDelay {
		t.Fatalf("witness type = %v, want CommitmentNoDelay", recovered.WitnessType)
	}
	if recovered.SignKey.PubKey().IsEqual(alicePaymentPriv.PubKey()) {
		t.Fatalf("recovered sign key should be tweaked, not the raw base point")
	}
}

// TestTryGetFundsFromLocalCommitmentTx checks that our own to_local
// delayed output is recognized on our own broadcast commitment
// transaction, carrying the CSV delay negotiated for our side.
func TestTryGetFundsFromLocalCommitmentTx(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	spec := specFromCommit(&alice.cm.LocalCommit)
	commit, err := buildCommitmentTx(
		alice.cm, 0, true, alice.cm.LocalCommit.Keys.CommitPoint,
		spec.ToLocalMsat, spec.ToRemoteMsat, specHtlcs(spec),
	)
	if err != nil {
		t.Fatalf("unable to build commitment tx: %v", err)
	}

	aliceDelayPriv := keyFromLabel("alice-delay")
	recovered, err := TryGetFundsFromLocalCommitmentTx(alice.cm, aliceDelayPriv, commit.Tx)
	if err != nil {
		t.Fatalf("try_get_funds_from_local_commitment_tx failed: %v", err)
	}
	if recovered.WitnessType != CommitmentTimeLock {
		t.Fatalf("witness type = %v, want CommitmentTimeLock", recovered.WitnessType)
	}
	if recovered.CsvDelay != uint32(alice.cm.LocalChanCfg.CsvDelay) {
		t.Fatalf("csv delay = %d, want %d", recovered.CsvDelay, alice.cm.LocalChanCfg.CsvDelay)
	}
}

// TestCreatePenaltyTx checks that a revoked remote commitment
// transaction's to_remote and to_local outputs are both recognized, the
// to_local output keyed off the derived revocation private key.
func TestCreatePenaltyTx(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	bobSpec := specFromCommit(&bob.cm.LocalCommit)
	bobCommit, err := buildCommitmentTx(
		bob.cm, 0, true, bob.cm.LocalCommit.Keys.CommitPoint,
		bobSpec.ToLocalMsat, bobSpec.ToRemoteMsat, specHtlcs(bobSpec),
	)
	if err != nil {
		t.Fatalf("unable to build bob's commitment tx: %v", err)
	}

	revokedSecret, _ := bob.cm.LocalPerCommitSecrets.SecretAt(0)

	alicePaymentPriv := keyFromLabel("alice-payment")
	aliceRevocationBasePriv := keyFromLabel("alice-revocation")

	recovered, err := CreatePenaltyTx(
		alice.cm, alicePaymentPriv, aliceRevocationBasePriv, revokedSecret, bobCommit.Tx,
	)
	if err != nil {
		t.Fatalf("create_penalty_tx failed: %v", err)
	}
	if len(recovered) != 2 {
		t.Fatalf("expected both to_remote and to_local outputs recovered, got %d", len(recovered))
	}

	var sawNoDelay, sawRevoke bool
	for _, out := range recovered {
		switch out.WitnessType {
		case CommitmentNoDelay:
			sawNoDelay = true
		case CommitmentRevoke:
			sawRevoke = true
		}
	}
	if !sawNoDelay || !sawRevoke {
		t.Fatalf("expected one CommitmentNoDelay and one CommitmentRevoke output, got %+v", recovered)
	}
}

// TestCreatePenaltyTxRejectsWrongVersion checks that create_penalty_tx
// delegates its structural check to ValidateCommitmentTx rather than
// attempting to recognize outputs on an arbitrary transaction.
func TestCreatePenaltyTxRejectsWrongVersion(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{PreviousOutPoint: alice.cm.FundingScriptCoin.Outpoint})

	var seed shachain.Secret
	_, err := CreatePenaltyTx(
		alice.cm, keyFromLabel("alice-payment"), keyFromLabel("alice-revocation"), seed, tx,
	)
	if _, ok := err.(*InvalidCommitmentTxError); !ok {
		t.Fatalf("expected *InvalidCommitmentTxError, got %T: %v", err, err)
	}
}
