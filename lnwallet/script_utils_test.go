package lnwallet

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

var (
	testWalletPrivKeyBytes = []byte{
		0x2b, 0xd8, 0x06, 0xc9, 0x7f, 0x0e, 0x00, 0xaf,
		0x1a, 0x1f, 0xc3, 0x32, 0x8f, 0xa7, 0x63, 0xa9,
		0x26, 0x97, 0x23, 0xc8, 0xdb, 0x8f, 0xac, 0x4f,
		0x93, 0xaf, 0x71, 0xdb, 0x18, 0x6d, 0x6e, 0x90,
	}

	bobsPrivKeyBytes = []byte{
		0x81, 0xb6, 0x37, 0xd8, 0xfc, 0xd2, 0xc6, 0xda,
		0x63, 0x59, 0xe6, 0x96, 0x31, 0x13, 0xa1, 0x17,
		0xd, 0xe7, 0x95, 0xe4, 0xb7, 0x25, 0xb8, 0x4d,
		0x1e, 0xb, 0x4c, 0xfd, 0x9e, 0xc5, 0x8c, 0xe9,
	}

	testHdSeedBytes = [32]byte{
		0xb7, 0x94, 0x38, 0x5f, 0x2d, 0x1e, 0xf7, 0xab,
		0x4d, 0x92, 0x73, 0xd1, 0x90, 0x63, 0x81, 0xb4,
		0x4f, 0x2f, 0x6f, 0x25, 0x88, 0xa3, 0xef, 0xb9,
		0x6a, 0x49, 0x18, 0x83, 0x31, 0x98, 0x47, 0x53,
	}
)

func executeScript(t *testing.T, pkScript []byte, sweepTx *wire.MsgTx,
	amt int64) {

	t.Helper()

	vm, err := txscript.NewEngine(
		pkScript, sweepTx, 0, txscript.StandardVerifyFlags, nil, nil,
		amt, newPrevOutFetcher(pkScript, btcutil.Amount(amt)),
	)
	if err != nil {
		t.Fatalf("unable to create engine: %v", err)
	}
	if err := vm.Execute(); err != nil {
		t.Fatalf("spend is invalid: %v", err)
	}
}

// TestCommitmentSpendValidation exercises the three spend paths of a
// commitment transaction's two outputs: the owner's CSV-delayed sweep, a
// counterparty's revocation sweep, and the counterparty's immediate
// unencumbered sweep.
func TestCommitmentSpendValidation(t *testing.T) {
	t.Parallel()

	const channelBalance = btcutil.Amount(1 * 10e8)
	const csvTimeout = uint32(5)

	aliceKeyPriv, aliceKeyPub := btcec.PrivKeyFromBytes(testWalletPrivKeyBytes)
	bobKeyPriv, bobKeyPub := btcec.PrivKeyFromBytes(bobsPrivKeyBytes)

	revocationPreimage := testHdSeedBytes[:]
	commitSecret, commitPoint := btcec.PrivKeyFromBytes(revocationPreimage)

	revokePubKey := DeriveRevocationPubkey(bobKeyPub, commitPoint)
	aliceDelayKey := TweakPubKey(aliceKeyPub, commitPoint)
	bobPayKey := TweakPubKey(bobKeyPub, commitPoint)
	aliceDelayPriv := TweakPrivKey(aliceKeyPriv, SingleTweakBytes(commitPoint, aliceKeyPub))
	bobPayPriv := TweakPrivKey(bobKeyPriv, SingleTweakBytes(commitPoint, bobKeyPub))

	delayScript, err := commitScriptToSelf(csvTimeout, aliceDelayKey, revokePubKey)
	if err != nil {
		t.Fatalf("unable to generate alice delay script: %v", err)
	}
	noDelayScript, err := commitScriptUnencumbered(bobPayKey)
	if err != nil {
		t.Fatalf("unable to generate bob's no-delay script: %v", err)
	}

	sweepTx := wire.NewMsgTx(2)
	sweepTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
	sweepTx.AddTxOut(&wire.TxOut{
		PkScript: noDelayScript,
		Value:    int64(channelBalance) - 1000,
	})

	// Alice sweeps her own delayed output after the CSV timeout.
	aliceWitness, err := commitSpendTimeout(
		delayScript, channelBalance, csvTimeout, aliceDelayPriv, sweepTx,
	)
	if err != nil {
		t.Fatalf("unable to generate delay commit spend witness: %v", err)
	}
	delayPkScript, err := witnessScriptHash(delayScript)
	if err != nil {
		t.Fatalf("unable to hash delay script: %v", err)
	}
	sweepTx.TxIn[0].Witness = aliceWitness
	executeScript(t, delayPkScript, sweepTx, int64(channelBalance))

	// Bob sweeps Alice's delayed output after learning the revocation
	// secret for this commitment.
	revocationPriv := DeriveRevocationPrivKey(bobKeyPriv, commitSecret)
	bobWitness, err := commitSpendRevoke(delayScript, channelBalance, revocationPriv, sweepTx)
	if err != nil {
		t.Fatalf("unable to generate revocation witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = bobWitness
	executeScript(t, delayPkScript, sweepTx, int64(channelBalance))

	// Bob spends his own unencumbered output immediately.
	bobRegularWitness, err := commitSpendNoDelay(noDelayScript, channelBalance, bobPayPriv, sweepTx)
	if err != nil {
		t.Fatalf("unable to create bob's regular spend: %v", err)
	}
	sweepTx.TxIn[0].Witness = bobRegularWitness
	executeScript(t, noDelayScript, sweepTx, int64(channelBalance))
}

// TestRevocationKeyDerivation checks that the revocation public key
// derived from the counterparty's base point and commitment point agrees
// with the revocation private key derived from the corresponding secrets.
func TestRevocationKeyDerivation(t *testing.T) {
	t.Parallel()

	commitSecret, commitPoint := btcec.PrivKeyFromBytes(testHdSeedBytes[:])
	basePriv, basePub := btcec.PrivKeyFromBytes(testWalletPrivKeyBytes)

	revocationPub := DeriveRevocationPubkey(basePub, commitPoint)
	revocationPriv := DeriveRevocationPrivKey(basePriv, commitSecret)

	if !revocationPub.IsEqual(revocationPriv.PubKey()) {
		t.Fatalf("derived public keys don't match")
	}
}

// TestTweakKeyDerivation checks that TweakPrivKey produces the private key
// counterpart of TweakPubKey's output.
func TestTweakKeyDerivation(t *testing.T) {
	t.Parallel()

	basePriv, basePub := btcec.PrivKeyFromBytes(testHdSeedBytes[:])
	_, commitPoint := btcec.PrivKeyFromBytes(bobsPrivKeyBytes)

	commitTweak := SingleTweakBytes(commitPoint, basePub)
	tweakedPub := TweakPubKey(basePub, commitPoint)
	derivedPriv := TweakPrivKey(basePriv, commitTweak)

	if !derivedPriv.PubKey().IsEqual(tweakedPub) {
		t.Fatalf("pub keys don't match")
	}
}

// TestHTLCSenderSpendValidation exercises the redemption paths carved out
// of the sender-side HTLC script: the receiver's revoke and redeem paths,
// and the sender's timeout path.
func TestHTLCSenderSpendValidation(t *testing.T) {
	t.Parallel()

	revokePreimage := append([]byte{}, testHdSeedBytes[:]...)
	_, commitPoint := btcec.PrivKeyFromBytes(revokePreimage)

	paymentPreimage := append([]byte{}, revokePreimage...)
	paymentPreimage[0] ^= 1
	paymentHash := sha256.Sum256(paymentPreimage)

	aliceKeyPriv, aliceKeyPub := btcec.PrivKeyFromBytes(testWalletPrivKeyBytes)
	bobKeyPriv, bobKeyPub := btcec.PrivKeyFromBytes(bobsPrivKeyBytes)
	paymentAmt := btcutil.Amount(1 * 10e8)

	aliceLocalKey := TweakPubKey(aliceKeyPub, commitPoint)
	bobLocalKey := TweakPubKey(bobKeyPub, commitPoint)

	aliceLocalPriv := TweakPrivKey(aliceKeyPriv, SingleTweakBytes(commitPoint, aliceKeyPub))
	bobLocalPriv := TweakPrivKey(bobKeyPriv, SingleTweakBytes(commitPoint, bobKeyPub))

	const absTimeout, relTimeout = uint32(10), uint32(5)

	revokeHash := sha256.Sum256(revokePreimage)
	htlcScript, err := senderHTLCScript(
		absTimeout, relTimeout, aliceLocalKey, bobLocalKey,
		revokeHash[:], paymentHash[:],
	)
	if err != nil {
		t.Fatalf("unable to create htlc sender script: %v", err)
	}
	htlcPkScript, err := witnessScriptHash(htlcScript)
	if err != nil {
		t.Fatalf("unable to create p2wsh htlc script: %v", err)
	}

	buildSweep := func() *wire.MsgTx {
		sweepTx := wire.NewMsgTx(2)
		sweepTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
		sweepTx.AddTxOut(&wire.TxOut{
			PkScript: []byte{txscript.OP_TRUE},
			Value:    int64(paymentAmt) - 1000,
		})
		return sweepTx
	}

	// Receiver claims via the revocation path.
	sweepTx := buildSweep()
	witness, err := senderHtlcSpendRevoke(
		htlcScript, paymentAmt, bobLocalPriv, sweepTx, revokePreimage,
	)
	if err != nil {
		t.Fatalf("unable to build revoke witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	executeScript(t, htlcPkScript, sweepTx, int64(paymentAmt))

	// Receiver redeems with the payment preimage.
	sweepTx = buildSweep()
	witness, err = senderHtlcSpendRedeem(
		htlcScript, paymentAmt, bobLocalPriv, sweepTx, paymentPreimage,
	)
	if err != nil {
		t.Fatalf("unable to build redeem witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	executeScript(t, htlcPkScript, sweepTx, int64(paymentAmt))

	// Sender reclaims after both timeouts have elapsed.
	sweepTx = buildSweep()
	witness, err = senderHtlcSpendTimeout(
		htlcScript, paymentAmt, aliceLocalPriv, sweepTx, absTimeout, relTimeout,
	)
	if err != nil {
		t.Fatalf("unable to build timeout witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	vm, err := txscript.NewEngine(
		htlcPkScript, sweepTx, 0, txscript.StandardVerifyFlags, nil, nil,
		int64(paymentAmt), newPrevOutFetcher(htlcPkScript, paymentAmt),
	)
	if err != nil {
		t.Fatalf("unable to create engine: %v", err)
	}
	if err := vm.Execute(); err != nil {
		t.Fatalf("timeout spend is invalid: %v", err)
	}
}

// TestHTLCReceiverSpendValidation exercises the redemption paths carved
// out of the receiver-side HTLC script: the receiver's redeem path, and
// the sender's revoke and timeout paths.
func TestHTLCReceiverSpendValidation(t *testing.T) {
	t.Parallel()

	revokePreimage := append([]byte{}, testHdSeedBytes[:]...)
	_, commitPoint := btcec.PrivKeyFromBytes(revokePreimage)

	paymentPreimage := append([]byte{}, revokePreimage...)
	paymentPreimage[0] ^= 1
	paymentHash := sha256.Sum256(paymentPreimage)

	aliceKeyPriv, aliceKeyPub := btcec.PrivKeyFromBytes(testWalletPrivKeyBytes)
	bobKeyPriv, bobKeyPub := btcec.PrivKeyFromBytes(bobsPrivKeyBytes)
	paymentAmt := btcutil.Amount(1 * 10e8)
	const absTimeout, relTimeout = uint32(8), uint32(5)

	aliceLocalKey := TweakPubKey(aliceKeyPub, commitPoint)
	bobLocalKey := TweakPubKey(bobKeyPub, commitPoint)

	aliceLocalPriv := TweakPrivKey(aliceKeyPriv, SingleTweakBytes(commitPoint, aliceKeyPub))
	bobLocalPriv := TweakPrivKey(bobKeyPriv, SingleTweakBytes(commitPoint, bobKeyPub))

	revokeHash := sha256.Sum256(revokePreimage)
	htlcScript, err := receiverHTLCScript(
		absTimeout, relTimeout, aliceLocalKey, bobLocalKey,
		revokeHash[:], paymentHash[:],
	)
	if err != nil {
		t.Fatalf("unable to create htlc receiver script: %v", err)
	}
	htlcPkScript, err := witnessScriptHash(htlcScript)
	if err != nil {
		t.Fatalf("unable to create p2wsh htlc script: %v", err)
	}

	buildSweep := func() *wire.MsgTx {
		sweepTx := wire.NewMsgTx(2)
		sweepTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Index: 0}, nil, nil))
		sweepTx.AddTxOut(&wire.TxOut{
			PkScript: []byte{txscript.OP_TRUE},
			Value:    int64(paymentAmt) - 1000,
		})
		return sweepTx
	}

	// Receiver redeems with the payment preimage after the relative delay.
	sweepTx := buildSweep()
	witness, err := receiverHtlcSpendRedeem(
		htlcScript, paymentAmt, bobLocalPriv, sweepTx, paymentPreimage, relTimeout,
	)
	if err != nil {
		t.Fatalf("unable to build redeem witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	executeScript(t, htlcPkScript, sweepTx, int64(paymentAmt))

	// Sender reclaims via the revocation path.
	sweepTx = buildSweep()
	witness, err = receiverHtlcSpendRevoke(
		htlcScript, paymentAmt, aliceLocalPriv, sweepTx, revokePreimage,
	)
	if err != nil {
		t.Fatalf("unable to build revoke witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	executeScript(t, htlcPkScript, sweepTx, int64(paymentAmt))

	// Sender reclaims via the absolute timeout path.
	sweepTx = buildSweep()
	witness, err = receiverHtlcSpendTimeout(
		htlcScript, paymentAmt, aliceLocalPriv, sweepTx, absTimeout,
	)
	if err != nil {
		t.Fatalf("unable to build timeout witness: %v", err)
	}
	sweepTx.TxIn[0].Witness = witness
	vm, err := txscript.NewEngine(
		htlcPkScript, sweepTx, 0, txscript.StandardVerifyFlags, nil, nil,
		int64(paymentAmt), newPrevOutFetcher(htlcPkScript, paymentAmt),
	)
	if err != nil {
		t.Fatalf("unable to create engine: %v", err)
	}
	if err := vm.Execute(); err != nil {
		t.Fatalf("timeout spend is invalid: %v", err)
	}
}
