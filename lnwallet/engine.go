package lnwallet

import (
	"crypto/sha256"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"

	"github.com/lightninglabs/chancore/htlcwire"
)

// clone returns a Commitments value whose Changes buffers and
// OriginChannels map are independent of the receiver's, so an operation
// that fails partway through never mutates the cm the caller is holding.
func (cm *Commitments) clone() *Commitments {
	next := *cm

	next.LocalChanges = cm.LocalChanges.clone()
	next.RemoteChanges = cm.RemoteChanges.clone()

	next.OriginChannels = make(map[uint64]interface{}, len(cm.OriginChannels))
	for id, origin := range cm.OriginChannels {
		next.OriginChannels[id] = origin
	}

	return &next
}

func (c Changes) clone() Changes {
	return Changes{
		Proposed: append([]PendingUpdate{}, c.Proposed...),
		Signed:   append([]PendingUpdate{}, c.Signed...),
		Acked:    append([]PendingUpdate{}, c.Acked...),
	}
}

// specFromCommit reconstructs the CommitmentSpec the reducer operates on
// from an already-built CommitmentTxn.
func specFromCommit(commit *CommitmentTxn) *CommitmentSpec {
	htlcs := make(map[uint64]HTLC, len(commit.HTLCs))
	for _, htlcTx := range commit.HTLCs {
		htlcs[htlcTx.HTLC.ID] = htlcTx.HTLC
	}

	return &CommitmentSpec{
		HTLCs:        htlcs,
		ToLocalMsat:  commit.OurBalance,
		ToRemoteMsat: commit.TheirBalance,
		FeePerKw:     commit.FeePerKw,
	}
}

// specHtlcs returns a spec's HTLC multiset as a slice in a deterministic
// (ascending ID) order, suitable for handing to buildCommitmentTx.
func specHtlcs(spec *CommitmentSpec) []HTLC {
	htlcs := make([]HTLC, 0, len(spec.HTLCs))
	for _, htlc := range spec.HTLCs {
		htlcs = append(htlcs, htlc)
	}
	sort.Slice(htlcs, func(i, j int) bool { return htlcs[i].ID < htlcs[j].ID })
	return htlcs
}

// signWitness computes the witness-v0 sighash over (tx, idx) spending an
// output locked by script and amt, and signs it with priv in the wire's
// fixed 64-byte raw encoding.
func signWitness(tx *wire.MsgTx, idx int, script []byte, amt btcutil.Amount,
	priv *btcec.PrivateKey) (htlcwire.Sig, error) {

	hashCache := txscript.NewTxSigHashes(tx, newPrevOutFetcher(script, amt))
	hash, err := txscript.CalcWitnessSigHash(
		script, hashCache, txscript.SigHashAll, tx, idx, int64(amt),
	)
	if err != nil {
		return htlcwire.Sig{}, err
	}

	sig := ecdsa.Sign(priv, hash)
	return fixedSigFromSignature(sig)
}

// verifyWitness is the counterpart of signWitness: it recomputes the
// sighash for (tx, idx) and checks sig against pub.
func verifyWitness(tx *wire.MsgTx, idx int, script []byte, amt btcutil.Amount,
	pub *btcec.PublicKey, sig htlcwire.Sig) error {

	hashCache := txscript.NewTxSigHashes(tx, newPrevOutFetcher(script, amt))
	hash, err := txscript.CalcWitnessSigHash(
		script, hashCache, txscript.SigHashAll, tx, idx, int64(amt),
	)
	if err != nil {
		return err
	}

	ecdsaSig, err := signatureFromFixed(sig)
	if err != nil {
		return err
	}
	if !ecdsaSig.Verify(hash, pub) {
		return errSignatureInvalid
	}
	return nil
}

var errSignatureInvalid = &TransactionError{Reason: "signature does not verify"}

// WeAcceptedFulfillHTLC is emitted by receive_fulfill once a peer's
// update_fulfill_htlc has been matched against the outgoing HTLC it
// settles.
type WeAcceptedFulfillHTLC struct {
	Msg    *htlcwire.UpdateFulfillHTLC
	Origin interface{}
	HTLC   HTLC
}

// WeAcceptedFailHTLC is emitted by receive_fail/receive_fail_malformed
// once a peer's failure message has been matched against the outgoing
// HTLC it resolves.
type WeAcceptedFailHTLC struct {
	Origin interface{}
	HTLC   HTLC
}

// SendFulfill stages a fulfill for the incoming, cross-signed HTLC
// htlcID, given its payment preimage.
func SendFulfill(cm *Commitments, htlcID uint64, preimage [32]byte) (
	*htlcwire.UpdateFulfillHTLC, *Commitments, error) {

	htlc, ok := findHTLC(cm.LocalCommit.HTLCs, htlcID, In)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}
	if isAlreadySent(htlc, cm.LocalChanges.Proposed) {
		return nil, nil, ErrHtlcAlreadySent
	}

	hash := sha256.Sum256(preimage[:])
	if hash != htlc.PaymentHash {
		return nil, nil, ErrInvalidPaymentPreimage
	}

	next := cm.clone()
	next.LocalChanges.Proposed = append(next.LocalChanges.Proposed, PendingUpdate{
		Kind:     updateFulfill,
		HtlcID:   htlcID,
		Preimage: preimage,
	})

	msg := &htlcwire.UpdateFulfillHTLC{
		ChanID:          htlcwire.ChannelID(cm.ChannelID),
		ID:              htlcID,
		PaymentPreimage: preimage,
	}
	return msg, next, nil
}

// ReceiveFulfill matches a peer's update_fulfill_htlc against the
// outgoing HTLC it settles.
func ReceiveFulfill(cm *Commitments, msg *htlcwire.UpdateFulfillHTLC) (
	*WeAcceptedFulfillHTLC, *Commitments, error) {

	htlc, ok := findHTLC(cm.RemoteCommit.HTLCs, msg.ID, Out)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}

	hash := sha256.Sum256(msg.PaymentPreimage[:])
	if hash != htlc.PaymentHash {
		return nil, nil, ErrInvalidPaymentPreimage
	}

	origin := cm.OriginChannels[msg.ID]

	next := cm.clone()
	next.RemoteChanges.Proposed = append(next.RemoteChanges.Proposed, PendingUpdate{
		Kind:     updateFulfill,
		HtlcID:   msg.ID,
		Preimage: msg.PaymentPreimage,
	})

	return &WeAcceptedFulfillHTLC{Msg: msg, Origin: origin, HTLC: htlc}, next, nil
}

// SendFail stages a fail for the incoming, cross-signed HTLC htlcID. The
// onion-layer crypto that produces encryptedReason (Sphinx's
// forward_error_packet/create_error_packet) is the caller's concern: the
// core only ever carries the already-wrapped opaque reason, the same way
// it carries HTLC.OnionBlob without interpreting it.
func SendFail(cm *Commitments, htlcID uint64, encryptedReason []byte) (
	*htlcwire.UpdateFailHTLC, *Commitments, error) {

	htlc, ok := findHTLC(cm.LocalCommit.HTLCs, htlcID, In)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}
	if isAlreadySent(htlc, cm.LocalChanges.Proposed) {
		return nil, nil, ErrHtlcAlreadySent
	}

	next := cm.clone()
	next.LocalChanges.Proposed = append(next.LocalChanges.Proposed, PendingUpdate{
		Kind:       updateFail,
		HtlcID:     htlcID,
		FailReason: encryptedReason,
	})

	msg := &htlcwire.UpdateFailHTLC{
		ChanID: htlcwire.ChannelID(cm.ChannelID),
		ID:     htlcID,
		Reason: encryptedReason,
	}
	return msg, next, nil
}

// ReceiveFail matches a peer's update_fail_htlc against the outgoing
// HTLC it resolves.
func ReceiveFail(cm *Commitments, msg *htlcwire.UpdateFailHTLC) (
	*WeAcceptedFailHTLC, *Commitments, error) {

	htlc, ok := findHTLC(cm.RemoteCommit.HTLCs, msg.ID, Out)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}

	origin := cm.OriginChannels[msg.ID]

	next := cm.clone()
	next.RemoteChanges.Proposed = append(next.RemoteChanges.Proposed, PendingUpdate{
		Kind:       updateFail,
		HtlcID:     msg.ID,
		FailReason: msg.Reason,
	})

	return &WeAcceptedFailHTLC{Origin: origin, HTLC: htlc}, next, nil
}

// SendFailMalformed stages a fail_malformed for the incoming,
// cross-signed HTLC htlcID. failureCode MUST carry the BADONION bit.
func SendFailMalformed(cm *Commitments, htlcID uint64, failureCode uint16) (
	*htlcwire.UpdateFailMalformedHTLC, *Commitments, error) {

	const badOnion = 0x8000

	htlc, ok := findHTLC(cm.LocalCommit.HTLCs, htlcID, In)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}
	if isAlreadySent(htlc, cm.LocalChanges.Proposed) {
		return nil, nil, ErrHtlcAlreadySent
	}
	if failureCode&badOnion == 0 {
		return nil, nil, ErrInvalidFailureCode
	}

	next := cm.clone()
	next.LocalChanges.Proposed = append(next.LocalChanges.Proposed, PendingUpdate{
		Kind:     updateFailMalformed,
		HtlcID:   htlcID,
		FailCode: failureCode,
	})

	msg := &htlcwire.UpdateFailMalformedHTLC{
		ChanID:      htlcwire.ChannelID(cm.ChannelID),
		ID:          htlcID,
		FailureCode: failureCode,
	}
	return msg, next, nil
}

// ReceiveFailMalformed matches a peer's update_fail_malformed_htlc
// against the outgoing HTLC it resolves.
func ReceiveFailMalformed(cm *Commitments, msg *htlcwire.UpdateFailMalformedHTLC) (
	*WeAcceptedFailHTLC, *Commitments, error) {

	const badOnion = 0x8000

	htlc, ok := findHTLC(cm.RemoteCommit.HTLCs, msg.ID, Out)
	if !ok {
		return nil, nil, ErrUnknownHtlcID
	}
	if msg.FailureCode&badOnion == 0 {
		return nil, nil, ErrInvalidFailureCode
	}

	origin := cm.OriginChannels[msg.ID]

	next := cm.clone()
	next.RemoteChanges.Proposed = append(next.RemoteChanges.Proposed, PendingUpdate{
		Kind:     updateFailMalformed,
		HtlcID:   msg.ID,
		FailCode: msg.FailureCode,
	})

	return &WeAcceptedFailHTLC{Origin: origin, HTLC: htlc}, next, nil
}

// SendFee stages an update_fee, only valid when the local party is the
// channel funder. It fails if the resulting remote balance can't absorb
// both the remote channel reserve and the new commitment fee.
func SendFee(cm *Commitments, feePerKw btcutil.Amount) (
	*htlcwire.UpdateFee, *Commitments, error) {

	if !cm.IsFunder {
		return nil, nil, ErrApiMisuse
	}

	update := PendingUpdate{Kind: updateFee, FeePerKw: feePerKw}

	localSpec := specFromCommit(&cm.LocalCommit)
	reduced, err := Reduce(localSpec, nil, false, []PendingUpdate{update}, true)
	if err != nil {
		return nil, nil, err
	}
	if err := CheckReserve(reduced, cm.RemoteChanCfg.DustLimit, cm.RemoteChanCfg.ChanReserve); err != nil {
		return nil, nil, err
	}

	next := cm.clone()
	next.LocalChanges.Proposed = append(next.LocalChanges.Proposed, update)

	msg := &htlcwire.UpdateFee{
		ChanID:   htlcwire.ChannelID(cm.ChannelID),
		FeePerKw: uint32(feePerKw),
	}
	return msg, next, nil
}

// ReceiveFee stages a peer-proposed update_fee, only valid when the
// remote party is the channel funder, and checked against our own
// observed feerate and the resulting balance's affordability.
func ReceiveFee(cm *Commitments, msg *htlcwire.UpdateFee, localFeePerKw btcutil.Amount) (*Commitments, error) {
	if cm.IsFunder {
		return nil, ErrApiMisuse
	}

	proposed := btcutil.Amount(msg.FeePerKw)
	if err := checkUpdateFee(proposed, localFeePerKw); err != nil {
		return nil, err
	}

	update := PendingUpdate{Kind: updateFee, FeePerKw: proposed}

	localSpec := specFromCommit(&cm.LocalCommit)
	reduced, err := Reduce(localSpec, []PendingUpdate{update}, true, nil, false)
	if err != nil {
		return nil, err
	}
	if err := CheckReserve(reduced, cm.LocalChanCfg.DustLimit, cm.LocalChanCfg.ChanReserve); err != nil {
		return nil, err
	}

	next := cm.clone()
	next.RemoteChanges.Proposed = append(next.RemoteChanges.Proposed, update)
	return next, nil
}

// SendCommit signs the next remote commitment transaction, folding every
// locally-proposed and remote-acked change into it. ourFundingPriv and
// ourHtlcBasePriv are consumed by value for this call only, per the
// resource policy of never retaining keys across a return.
func SendCommit(cm *Commitments, ourFundingPriv, ourHtlcBasePriv *btcec.PrivateKey) (
	*htlcwire.CommitSig, *Commitments, error) {

	if cm.RemoteNextCommitInfo.IsWaiting() {
		return nil, nil, ErrCanNotSignBeforeRevocation
	}
	point := cm.RemoteNextCommitInfo.Revoked
	if point == nil {
		return nil, nil, ErrCanNotSignBeforeRevocation
	}

	remoteSpec := specFromCommit(&cm.RemoteCommit)
	reduced, err := Reduce(
		remoteSpec, cm.RemoteChanges.Acked, !cm.IsFunder,
		cm.LocalChanges.Proposed, cm.IsFunder,
	)
	if err != nil {
		return nil, nil, err
	}

	nextNumber := cm.RemoteCommit.Number + 1
	nextRemote, err := buildCommitmentTx(
		cm, nextNumber, false, point, reduced.ToLocalMsat,
		reduced.ToRemoteMsat, specHtlcs(reduced),
	)
	if err != nil {
		return nil, nil, err
	}

	commitSig, err := signWitness(
		nextRemote.Tx, 0, cm.FundingScriptCoin.RedeemScript,
		cm.FundingScriptCoin.Amount, ourFundingPriv,
	)
	if err != nil {
		return nil, nil, err
	}

	tweak := SingleTweakBytes(point, ourHtlcBasePriv.PubKey())
	ourHtlcPriv := TweakPrivKey(ourHtlcBasePriv, tweak)

	htlcSigs := make([]htlcwire.Sig, len(nextRemote.HTLCs))
	for i, htlcTx := range nextRemote.HTLCs {
		sig, err := signWitness(
			htlcTx.Tx, 0, htlcTx.WitnessScript,
			htlcTx.HTLC.Amount.ToSatoshis(), ourHtlcPriv,
		)
		if err != nil {
			return nil, nil, err
		}
		htlcSigs[i] = sig
	}

	next := cm.clone()
	next.LocalChanges.Signed = next.LocalChanges.Proposed
	next.LocalChanges.Proposed = nil
	next.RemoteChanges.Signed = next.RemoteChanges.Acked
	next.RemoteChanges.Acked = nil
	next.RemoteNextCommitInfo = RemoteNextCommitInfo{Waiting: nextRemote}

	log.Tracef("ChannelPoint(%v): sending new commitment, dumping tx: %v",
		cm.FundingScriptCoin.Outpoint, newLogClosure(func() string {
			return spew.Sdump(nextRemote.Tx)
		}))

	msg := &htlcwire.CommitSig{
		ChanID:    htlcwire.ChannelID(cm.ChannelID),
		CommitSig: commitSig,
		HtlcSigs:  htlcSigs,
	}
	return msg, next, nil
}

// ReceiveCommit verifies a peer's commitment_signed against the next
// local commitment transaction and, on success, advances the local
// commitment chain and returns the revoke_and_ack to send back.
// remoteFundingPub/remoteHtlcBasePub are the peer's base points, needed
// to check the funding 2-of-2 signature and each per-HTLC signature.
func ReceiveCommit(cm *Commitments, msg *htlcwire.CommitSig,
	remoteFundingPub, remoteHtlcBasePub *btcec.PublicKey) (
	*htlcwire.RevokeAndAck, *Commitments, error) {

	if len(cm.RemoteChanges.Proposed) == 0 {
		return nil, nil, ErrReceivedCommitSigWithNoChanges
	}

	localSpec := specFromCommit(&cm.LocalCommit)
	reduced, err := Reduce(
		localSpec, cm.LocalChanges.Acked, cm.IsFunder,
		cm.RemoteChanges.Proposed, !cm.IsFunder,
	)
	if err != nil {
		return nil, nil, err
	}

	nextNumber := cm.LocalCommit.Number + 1
	nextPoint, err := cm.LocalPerCommitSecrets.pointAt(nextNumber)
	if err != nil {
		return nil, nil, err
	}

	nextLocal, err := buildCommitmentTx(
		cm, nextNumber, true, nextPoint, reduced.ToLocalMsat,
		reduced.ToRemoteMsat, specHtlcs(reduced),
	)
	if err != nil {
		return nil, nil, err
	}

	remoteHtlcKey := TweakPubKey(remoteHtlcBasePub, nextPoint)

	if err := verifyWitness(
		nextLocal.Tx, 0, cm.FundingScriptCoin.RedeemScript,
		cm.FundingScriptCoin.Amount, remoteFundingPub, msg.CommitSig,
	); err != nil {
		return nil, nil, err
	}

	if len(msg.HtlcSigs) != len(nextLocal.HTLCs) {
		return nil, nil, &SignatureCountMismatchError{
			Expected: len(nextLocal.HTLCs), Got: len(msg.HtlcSigs),
		}
	}

	var sigErrs []error
	for i, htlcTx := range nextLocal.HTLCs {
		err := verifyWitness(
			htlcTx.Tx, 0, htlcTx.WitnessScript,
			htlcTx.HTLC.Amount.ToSatoshis(), remoteHtlcKey, msg.HtlcSigs[i],
		)
		if err != nil {
			sigErrs = append(sigErrs, &HtlcSignatureError{HtlcIndex: i, Err: err})
		}
	}
	if len(sigErrs) > 0 {
		return nil, nil, sigErrs[0]
	}

	oldNumber := cm.LocalCommit.Number
	revealedSecret, _ := cm.LocalPerCommitSecrets.SecretAt(oldNumber)
	futurePoint, err := cm.LocalPerCommitSecrets.pointAt(oldNumber + 2)
	if err != nil {
		return nil, nil, err
	}

	next := cm.clone()
	next.LocalCommit = *nextLocal
	next.LocalChanges.Acked = nil
	next.RemoteChanges.Proposed = nil
	next.RemoteChanges.Acked = append(next.RemoteChanges.Acked, cm.RemoteChanges.Proposed...)
	next.OriginChannels = pruneOrigins(next.OriginChannels, specHtlcs(reduced))

	ack := &htlcwire.RevokeAndAck{
		ChanID:     htlcwire.ChannelID(cm.ChannelID),
		Revocation: [32]byte(revealedSecret),
	}
	copy(ack.NextPerCommitmentPoint[:], futurePoint.SerializeCompressed())

	log.Tracef("ChannelPoint(%v): accepted new commitment, dumping tx: %v",
		cm.FundingScriptCoin.Outpoint, newLogClosure(func() string {
			return spew.Sdump(nextLocal.Tx)
		}))

	return ack, next, nil
}

// pointAt derives the per-commitment point for num without exposing its
// secret, used when the local party needs to hand the *next* point to
// the peer without yet revealing the current one.
func (p *PerCommitmentSecretProducer) pointAt(num CommitmentNumber) (*btcec.PublicKey, error) {
	_, pub := p.SecretAt(num)
	return pub, nil
}

// findHTLC locates the HTLC with the given id and direction among a
// commitment's locked-in HTLC sub-transactions.
func findHTLC(htlcs []HtlcTx, id uint64, dir HTLCDirection) (HTLC, bool) {
	for _, htlcTx := range htlcs {
		if htlcTx.HTLC.ID == id && htlcTx.HTLC.Direction == dir {
			return htlcTx.HTLC, true
		}
	}
	return HTLC{}, false
}

// pruneOrigins drops origin entries for outgoing HTLC ids no longer
// present in the surviving set.
func pruneOrigins(origins map[uint64]interface{}, surviving []HTLC) map[uint64]interface{} {
	alive := make(map[uint64]bool, len(surviving))
	for _, htlc := range surviving {
		if htlc.Direction == Out {
			alive[htlc.ID] = true
		}
	}

	pruned := make(map[uint64]interface{}, len(origins))
	for id, origin := range origins {
		if alive[id] {
			pruned[id] = origin
		}
	}
	return pruned
}
