package lnwallet

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SequenceLockTimeSeconds and SequenceLockTimeMask are the BIP-68 relative
// locktime flag and mask lockTimeToSequence translates CSV delays through.
var (
	SequenceLockTimeSeconds     = uint32(1 << 22)
	SequenceLockTimeMask        = uint32(0x0000ffff)
	csvOp                  byte = txscript.OP_CHECKSEQUENCEVERIFY
)

// witnessScriptHash generates a pay-to-witness-script-hash public key
// script paying to a version 0 witness program paying to the passed
// redeem script.
func witnessScriptHash(redeemScript []byte) ([]byte, error) {
	bldr := txscript.NewScriptBuilder()

	bldr.AddOp(txscript.OP_0)
	scriptHash := sha256.Sum256(redeemScript)
	bldr.AddData(scriptHash[:])
	return bldr.Script()
}

// genMultiSigScript generates the non-p2sh'd multisig script for 2 of 2
// pubkeys.
func genMultiSigScript(aPub, bPub []byte) ([]byte, error) {
	if len(aPub) != 33 || len(bPub) != 33 {
		return nil, fmt.Errorf("pubkey size error: compressed pubkeys only")
	}

	// Swap to sort pubkeys if needed. Keys are sorted in lexicographical
	// order. The signatures within the witness stack must also adhere
	// to this order, ensuring the signature for each public key appears
	// in the proper order on the stack.
	if bytes.Compare(aPub, bPub) == 1 {
		aPub, bPub = bPub, aPub
	}

	bldr := txscript.NewScriptBuilder()
	bldr.AddOp(txscript.OP_2)
	bldr.AddData(aPub)
	bldr.AddData(bPub)
	bldr.AddOp(txscript.OP_2)
	bldr.AddOp(txscript.OP_CHECKMULTISIG)
	return bldr.Script()
}

// genFundingPkScript creates a redeem script, and its matching P2WSH
// output, for the channel's 2-of-2 funding transaction.
func genFundingPkScript(aPub, bPub []byte, amt int64) ([]byte, *wire.TxOut, error) {
	if amt <= 0 {
		return nil, nil, fmt.Errorf("can't create funding output with " +
			"zero, or negative coins")
	}

	redeemScript, err := genMultiSigScript(aPub, bPub)
	if err != nil {
		return nil, nil, err
	}

	pkScript, err := witnessScriptHash(redeemScript)
	if err != nil {
		return nil, nil, err
	}

	return redeemScript, wire.NewTxOut(amt, pkScript), nil
}

// spendMultiSig generates the witness stack required to redeem the 2-of-2
// P2WSH funding multi-sig output.
func spendMultiSig(redeemScript, pubA, sigA, pubB, sigB []byte) [][]byte {
	witness := make([][]byte, 4)

	// When spending a P2WSH multi-sig script, rather than an OP_0, we
	// add a nil stack element to eat the extra pop.
	witness[0] = nil

	// The redeem script sorted the serialized public keys in ascending
	// order, so the signatures must appear on the stack in the same
	// order.
	if bytes.Compare(pubA, pubB) == -1 {
		witness[1] = sigA
		witness[2] = sigB
	} else {
		witness[1] = sigB
		witness[2] = sigA
	}

	witness[3] = redeemScript

	return witness
}

// findScriptOutputIndex finds the index of the public key script output
// matching script. The returned bool is false if no matching output was
// found. The search stops after the first match.
func findScriptOutputIndex(tx *wire.MsgTx, script []byte) (bool, uint32) {
	for i, txOut := range tx.TxOut {
		if bytes.Equal(txOut.PkScript, script) {
			return true, uint32(i)
		}
	}

	return false, 0
}

// senderHTLCScript constructs the public key script for an outgoing HTLC
// output on the sender's version of the commitment transaction:
//
// Possible witnesses:
//
//	RECEIVER REDEEM:  <receiver sig> <preimage> 0 1
//	RECEIVER REVOKE:  <receiver sig> <revoke preimage> 1 1
//	SENDER TIMEOUT:   <sender sig> 0
//
// OP_IF
//
//	//Receiver
//	OP_IF
//	    //Revoke
//	    <revocation hash>
//	OP_ELSE
//	    //Redeem
//	    OP_SIZE 32 OP_EQUALVERIFY
//	    <payment hash>
//	OP_ENDIF
//	OP_SWAP
//	OP_SHA256 OP_EQUALVERIFY
//	<receiver key> OP_CHECKSIG
//
// OP_ELSE
//
//	//Sender
//	<absolute timeout> OP_CHECKLOCKTIMEVERIFY
//	<relative timeout> OP_CHECKSEQUENCEVERIFY
//	OP_2DROP
//	<sender key> OP_CHECKSIG
//
// OP_ENDIF
func senderHTLCScript(absoluteTimeout, relativeTimeout uint32, senderKey,
	receiverKey *btcec.PublicKey, revokeHash, paymentHash []byte) ([]byte, error) {

	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)

	builder.AddOp(txscript.OP_IF)
	builder.AddData(revokeHash)

	builder.AddOp(txscript.OP_ELSE)
	builder.AddOp(txscript.OP_SIZE)
	builder.AddInt64(32)
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddData(paymentHash)
	builder.AddOp(txscript.OP_ENDIF)

	builder.AddOp(txscript.OP_SWAP)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddOp(txscript.OP_EQUALVERIFY)

	builder.AddData(receiverKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)

	builder.AddOp(txscript.OP_ELSE)

	// The sender must wait for an absolute HTLC timeout, then a
	// relative timeout, before reclaiming the funds. The delay gives
	// the receiver a window to present the revocation preimage in the
	// event the sender broadcasts this commitment after it's revoked.
	builder.AddInt64(int64(absoluteTimeout))
	builder.AddOp(txscript.OP_CHECKLOCKTIMEVERIFY)
	builder.AddInt64(int64(relativeTimeout))
	builder.AddOp(csvOp)
	builder.AddOp(txscript.OP_2DROP)
	builder.AddData(senderKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)

	builder.AddOp(txscript.OP_ENDIF)

	return builder.Script()
}

// senderHtlcSpendRevoke constructs a valid witness allowing the receiver
// of an HTLC to claim the sender's output with knowledge of the
// revocation preimage, when the sender broadcasts a revoked commitment.
func senderHtlcSpendRevoke(commitScript []byte, outputAmt btcutil.Amount,
	receiverKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	revokePreimage []byte) (wire.TxWitness, error) {

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, receiverKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 5)
	witnessStack[0] = sweepSig
	witnessStack[1] = revokePreimage
	witnessStack[2] = []byte{1}
	witnessStack[3] = []byte{1}
	witnessStack[4] = commitScript

	return witnessStack, nil
}

// senderHtlcSpendRedeem constructs a valid witness allowing the receiver
// of an HTLC to redeem the output on the sender's commitment transaction
// with knowledge of the payment preimage.
func senderHtlcSpendRedeem(commitScript []byte, outputAmt btcutil.Amount,
	receiverKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	paymentPreimage []byte) (wire.TxWitness, error) {

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, receiverKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 5)
	witnessStack[0] = sweepSig
	witnessStack[1] = paymentPreimage
	witnessStack[2] = nil
	witnessStack[3] = []byte{1}
	witnessStack[4] = commitScript

	return witnessStack, nil
}

// senderHtlcSpendTimeout constructs a valid witness allowing the sender of
// an HTLC to recover the pending funds after the absolute, then relative
// timeout has elapsed.
func senderHtlcSpendTimeout(commitScript []byte, outputAmt btcutil.Amount,
	senderKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	absoluteTimeout, relativeTimeout uint32) (wire.TxWitness, error) {

	sweepTx.LockTime = absoluteTimeout
	sweepTx.TxIn[0].Sequence = lockTimeToSequence(false, relativeTimeout)
	sweepTx.Version = 2

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, senderKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 3)
	witnessStack[0] = sweepSig
	witnessStack[1] = nil
	witnessStack[2] = commitScript

	return witnessStack, nil
}

// receiverHTLCScript constructs the public key script for an incoming
// HTLC output on the receiver's version of the commitment transaction:
//
// Possible witnesses:
//
//	RECEIVER REDEEM: <receiver sig> <preimage> 1
//	SENDER REVOKE:   <sender sig> <revoke preimage> 1 0
//	SENDER TIMEOUT:  <sender sig> 0 0
func receiverHTLCScript(absoluteTimeout, relativeTimeout uint32, senderKey,
	receiverKey *btcec.PublicKey, revokeHash, paymentHash []byte) ([]byte, error) {

	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)

	// The receiver can redeem after a relative timeout, which gives the
	// sender a window to claim the funds if this old, revoked
	// commitment is broadcast instead.
	builder.AddOp(txscript.OP_SIZE)
	builder.AddInt64(32)
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(paymentHash)
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddInt64(int64(relativeTimeout))
	builder.AddOp(csvOp)
	builder.AddOp(txscript.OP_DROP)
	builder.AddData(receiverKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)

	builder.AddOp(txscript.OP_ELSE)

	builder.AddOp(txscript.OP_IF)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(revokeHash)
	builder.AddOp(txscript.OP_EQUALVERIFY)

	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(absoluteTimeout))
	builder.AddOp(txscript.OP_CHECKLOCKTIMEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddOp(txscript.OP_ENDIF)

	builder.AddData(senderKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)

	builder.AddOp(txscript.OP_ENDIF)

	return builder.Script()
}

// receiverHtlcSpendRedeem constructs a valid witness allowing the receiver
// of an HTLC to redeem it on their own commitment transaction after the
// relative timeout has elapsed.
func receiverHtlcSpendRedeem(commitScript []byte, outputAmt btcutil.Amount,
	receiverKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	paymentPreimage []byte, relativeTimeout uint32) (wire.TxWitness, error) {

	sweepTx.TxIn[0].Sequence = lockTimeToSequence(false, relativeTimeout)
	sweepTx.Version = 2

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, receiverKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 4)
	witnessStack[0] = sweepSig
	witnessStack[1] = paymentPreimage
	witnessStack[2] = []byte{1}
	witnessStack[3] = commitScript

	return witnessStack, nil
}

// receiverHtlcSpendRevoke constructs a valid witness allowing the sender
// of an HTLC to reclaim the funds from the receiver's revoked commitment
// transaction, given the revocation preimage.
func receiverHtlcSpendRevoke(commitScript []byte, outputAmt btcutil.Amount,
	senderKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	revokePreimage []byte) (wire.TxWitness, error) {

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, senderKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 5)
	witnessStack[0] = sweepSig
	witnessStack[1] = revokePreimage
	witnessStack[2] = []byte{1}
	witnessStack[3] = nil
	witnessStack[4] = commitScript

	return witnessStack, nil
}

// receiverHtlcSpendTimeout constructs a valid witness allowing the sender
// of an HTLC to recover the funds after an absolute timeout, when the
// receiver broadcasts their own commitment transaction.
func receiverHtlcSpendTimeout(commitScript []byte, outputAmt btcutil.Amount,
	senderKey *btcec.PrivateKey, sweepTx *wire.MsgTx,
	absoluteTimeout uint32) (wire.TxWitness, error) {

	sweepTx.LockTime = absoluteTimeout

	// OP_CHECKLOCKTIMEVERIFY also requires a non-final input sequence.
	sweepTx.TxIn[0].Sequence = wire.MaxTxInSequenceNum - 1

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, senderKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 4)
	witnessStack[0] = sweepSig
	witnessStack[1] = nil
	witnessStack[2] = nil
	witnessStack[3] = commitScript

	return witnessStack, nil
}

// lockTimeToSequence converts a relative locktime to a BIP-68 sequence
// number.
func lockTimeToSequence(isSeconds bool, locktime uint32) uint32 {
	if !isSeconds {
		return SequenceLockTimeMask & locktime
	}

	return SequenceLockTimeSeconds | (locktime >> 9)
}

// commitScriptToSelf constructs the public key script for the commitment
// output paying back to the owner of that commitment transaction. If the
// counterparty can sign for revokeKey (after learning this commitment's
// revocation secret), they can claim this output immediately instead.
//
// Possible witnesses:
//
//	REVOKE:      <revocation sig> 1
//	SELF SWEEP:  <self sig> 0
func commitScriptToSelf(csvTimeout uint32, selfKey, revokeKey *btcec.PublicKey) ([]byte, error) {
	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)
	builder.AddData(revokeKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)

	builder.AddOp(txscript.OP_ELSE)
	builder.AddData(selfKey.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIGVERIFY)
	builder.AddInt64(int64(csvTimeout))
	builder.AddOp(csvOp)
	builder.AddOp(txscript.OP_ENDIF)

	return builder.Script()
}

// commitScriptUnencumbered constructs the public key script for the
// counterparty's commitment output: a plain P2WPKH, spendable
// immediately with no contestation period.
func commitScriptUnencumbered(key *btcec.PublicKey) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_0)
	builder.AddData(btcutil.Hash160(key.SerializeCompressed()))

	return builder.Script()
}

// commitSpendTimeout constructs a valid witness allowing the owner of a
// commitment transaction to reclaim their settled output after the CSV
// delay elapses.
func commitSpendTimeout(commitScript []byte, outputAmt btcutil.Amount,
	blockTimeout uint32, selfKey *btcec.PrivateKey,
	sweepTx *wire.MsgTx) (wire.TxWitness, error) {

	sweepTx.TxIn[0].Sequence = lockTimeToSequence(false, blockTimeout)
	sweepTx.Version = 2

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, selfKey,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 3)
	witnessStack[0] = sweepSig
	witnessStack[1] = nil
	witnessStack[2] = commitScript

	return witnessStack, nil
}

// commitSpendRevoke constructs a valid witness allowing a node to sweep
// the settled output of a counterparty who broadcast a revoked
// commitment transaction, given the derived revocation private key.
func commitSpendRevoke(commitScript []byte, outputAmt btcutil.Amount,
	revocationPriv *btcec.PrivateKey, sweepTx *wire.MsgTx) (wire.TxWitness, error) {

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, revocationPriv,
	)
	if err != nil {
		return nil, err
	}

	witnessStack := make(wire.TxWitness, 3)
	witnessStack[0] = sweepSig
	witnessStack[1] = []byte{1}
	witnessStack[2] = commitScript

	return witnessStack, nil
}

// commitSpendNoDelay constructs a valid witness allowing a node to spend
// their unencumbered, immediately-spendable output on the counterparty's
// commitment transaction — a plain P2WPKH spend.
func commitSpendNoDelay(commitScript []byte, outputAmt btcutil.Amount,
	commitPriv *btcec.PrivateKey, sweepTx *wire.MsgTx) (wire.TxWitness, error) {

	hashCache := txscript.NewTxSigHashes(sweepTx, newPrevOutFetcher(commitScript, outputAmt))
	sweepSig, err := txscript.RawTxInWitnessSignature(
		sweepTx, hashCache, 0, int64(outputAmt), commitScript,
		txscript.SigHashAll, commitPriv,
	)
	if err != nil {
		return nil, err
	}

	pubKey := commitPriv.PubKey().SerializeCompressed()

	return wire.TxWitness{sweepSig, pubKey}, nil
}

// newPrevOutFetcher builds the single-output fetcher txscript's sighash
// machinery needs for a segwit spend, given only the script and value of
// the one output being spent. The commitment engine never holds a full
// previous transaction in hand — only the one output it's reconstructing
// a spend path for — so this stands in for a real coin-set lookup.
func newPrevOutFetcher(pkScript []byte, amt btcutil.Amount) *txscript.CannedPrevOutputFetcher {
	return txscript.NewCannedPrevOutputFetcher(pkScript, int64(amt))
}
