package lnwallet

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/lightninglabs/chancore/htlcwire"
	"github.com/lightninglabs/chancore/shachain"
)

// keyFromLabel derives a deterministic, distinct private key for each test
// fixture role, so the test doesn't depend on crypto/rand for
// reproducibility.
func keyFromLabel(label string) *btcec.PrivateKey {
	seed := sha256.Sum256([]byte(label))
	priv, _ := btcec.PrivKeyFromBytes(seed[:])
	return priv
}

// testChannel bundles one party's view of a two-party channel fixture
// along with the private keys a test needs to drive send-side operations.
type testChannel struct {
	cm *Commitments

	fundingPriv *btcec.PrivateKey
	htlcPriv    *btcec.PrivateKey
}

// createTestChannels builds mirrored Alice/Bob Commitments sharing one
// funding output and one cross-signed HTLC (offered by Bob to Alice),
// so the engine's settlement operations (fulfill, commit/revoke) have
// something real to operate on without needing a send_add_htlc operation,
// which §4.3 doesn't name as one of the engine's six operations.
func createTestChannels(t *testing.T, htlcAmt htlcwire.MilliSatoshi) (alice, bob *testChannel) {
	t.Helper()

	const capacitySat = btcutil.Amount(1_000_000)
	const dustLimit = btcutil.Amount(573)
	const chanReserve = btcutil.Amount(10_000)
	const csvDelay = uint16(144)
	const feePerKw = btcutil.Amount(5000)

	aliceFundingPriv := keyFromLabel("alice-funding")
	bobFundingPriv := keyFromLabel("bob-funding")

	aliceCfg := ChannelConfig{
		DustLimit:           dustLimit,
		ChanReserve:         chanReserve,
		MaxPendingAmount:    1 << 40,
		MinHTLC:             1,
		MaxAcceptedHtlcs:    30,
		CsvDelay:            csvDelay,
		RevocationBasePoint: keyFromLabel("alice-revocation").PubKey(),
		PaymentBasePoint:    keyFromLabel("alice-payment").PubKey(),
		DelayBasePoint:      keyFromLabel("alice-delay").PubKey(),
		HtlcBasePoint:       keyFromLabel("alice-htlc").PubKey(),
	}
	bobCfg := ChannelConfig{
		DustLimit:           dustLimit,
		ChanReserve:         chanReserve,
		MaxPendingAmount:    1 << 40,
		MinHTLC:             1,
		MaxAcceptedHtlcs:    30,
		CsvDelay:            csvDelay,
		RevocationBasePoint: keyFromLabel("bob-revocation").PubKey(),
		PaymentBasePoint:    keyFromLabel("bob-payment").PubKey(),
		DelayBasePoint:      keyFromLabel("bob-delay").PubKey(),
		HtlcBasePoint:       keyFromLabel("bob-htlc").PubKey(),
	}

	redeemScript, fundingTxOut, err := genFundingPkScript(
		aliceFundingPriv.PubKey().SerializeCompressed(),
		bobFundingPriv.PubKey().SerializeCompressed(),
		int64(capacitySat),
	)
	if err != nil {
		t.Fatalf("unable to create funding script: %v", err)
	}
	fundingCoin := FundingScriptCoin{
		Outpoint:     wire.OutPoint{Index: 0},
		Amount:       capacitySat,
		RedeemScript: redeemScript,
		PkScript:     fundingTxOut.PkScript,
	}

	aliceSeed := sha256.Sum256([]byte("alice-commit-seed"))
	bobSeed := sha256.Sum256([]byte("bob-commit-seed"))
	aliceProducer := NewPerCommitmentSecretProducer(shachain.Secret(aliceSeed))
	bobProducer := NewPerCommitmentSecretProducer(shachain.Secret(bobSeed))

	_, aliceCommitPoint0 := aliceProducer.SecretAt(0)
	_, bobCommitPoint0 := bobProducer.SecretAt(0)
	_, bobCommitPoint1 := bobProducer.SecretAt(1)
	_, aliceCommitPoint1 := aliceProducer.SecretAt(1)

	paymentPreimage := sha256.Sum256([]byte("payment-preimage"))
	paymentHash := sha256.Sum256(paymentPreimage[:])

	aliceHtlcIn := HTLC{
		ID:          1,
		Direction:   In,
		Amount:      htlcAmt,
		PaymentHash: paymentHash,
		CltvExpiry:  500_000,
	}
	bobHtlcOut := aliceHtlcIn
	bobHtlcOut.Direction = Out

	aliceOurBalance := htlcwire.MilliSatoshi(500_000_000) - htlcAmt
	aliceTheirBalance := htlcwire.MilliSatoshi(500_000_000)

	aliceCm := &Commitments{
		ChannelID:     [32]byte{1},
		IsFunder:      true,
		LocalChanCfg:  aliceCfg,
		RemoteChanCfg: bobCfg,

		FundingScriptCoin: fundingCoin,

		LocalCommit: CommitmentTxn{
			Number:       0,
			Keys:         &CommitmentKeyRing{CommitPoint: aliceCommitPoint0},
			HTLCs:        []HtlcTx{{HTLC: aliceHtlcIn}},
			OurBalance:   aliceOurBalance,
			TheirBalance: aliceTheirBalance,
			FeePerKw:     feePerKw,
		},
		RemoteCommit: CommitmentTxn{
			Number:       0,
			Keys:         &CommitmentKeyRing{CommitPoint: bobCommitPoint0},
			HTLCs:        []HtlcTx{{HTLC: aliceHtlcIn}},
			OurBalance:   aliceOurBalance,
			TheirBalance: aliceTheirBalance,
			FeePerKw:     feePerKw,
		},
		RemoteNextCommitInfo: RemoteNextCommitInfo{Revoked: bobCommitPoint1},

		OriginChannels: make(map[uint64]interface{}),

		LocalPerCommitSecrets:  aliceProducer,
		RemotePerCommitSecrets: NewPerCommitmentSecretStore(),

		FeePerKw: feePerKw,
	}

	bobCm := &Commitments{
		ChannelID:     [32]byte{1},
		IsFunder:      false,
		LocalChanCfg:  bobCfg,
		RemoteChanCfg: aliceCfg,

		FundingScriptCoin: fundingCoin,

		LocalCommit: CommitmentTxn{
			Number:       0,
			Keys:         &CommitmentKeyRing{CommitPoint: bobCommitPoint0},
			HTLCs:        []HtlcTx{{HTLC: bobHtlcOut}},
			OurBalance:   aliceTheirBalance,
			TheirBalance: aliceOurBalance,
			FeePerKw:     feePerKw,
		},
		RemoteCommit: CommitmentTxn{
			Number:       0,
			Keys:         &CommitmentKeyRing{CommitPoint: aliceCommitPoint0},
			HTLCs:        []HtlcTx{{HTLC: bobHtlcOut}},
			OurBalance:   aliceTheirBalance,
			TheirBalance: aliceOurBalance,
			FeePerKw:     feePerKw,
		},
		RemoteNextCommitInfo: RemoteNextCommitInfo{Revoked: aliceCommitPoint1},

		OriginChannels: make(map[uint64]interface{}),

		LocalPerCommitSecrets:  bobProducer,
		RemotePerCommitSecrets: NewPerCommitmentSecretStore(),

		FeePerKw: feePerKw,
	}

	alice = &testChannel{
		cm:          aliceCm,
		fundingPriv: aliceFundingPriv,
		htlcPriv:    keyFromLabel("alice-htlc"),
	}
	bob = &testChannel{
		cm:          bobCm,
		fundingPriv: bobFundingPriv,
		htlcPriv:    keyFromLabel("bob-htlc"),
	}
	return alice, bob
}

// TestSendReceiveFulfill drives send_fulfill/receive_fulfill end to end:
// Alice settles the HTLC Bob offered her, and Bob's ReceiveFulfill call
// must recognize the same HTLC (cross-referenced by id and payment hash)
// on his own view of the remote commitment.
func TestSendReceiveFulfill(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	preimage := sha256.Sum256([]byte("payment-preimage"))

	msg, aliceNext, err := SendFulfill(alice.cm, 1, preimage)
	if err != nil {
		t.Fatalf("send_fulfill failed: %v", err)
	}
	if len(aliceNext.LocalChanges.Proposed) != 1 {
		t.Fatalf("expected one proposed change, got %d", len(aliceNext.LocalChanges.Proposed))
	}

	accepted, bobNext, err := ReceiveFulfill(bob.cm, msg)
	if err != nil {
		t.Fatalf("receive_fulfill failed: %v", err)
	}
	if accepted.HTLC.ID != 1 {
		t.Fatalf("receive_fulfill resolved wrong htlc id: %d", accepted.HTLC.ID)
	}
	if len(bobNext.RemoteChanges.Proposed) != 1 {
		t.Fatalf("expected one remote-proposed change on bob, got %d",
			len(bobNext.RemoteChanges.Proposed))
	}

	// The original cm values must be untouched -- SendFulfill/ReceiveFulfill
	// only ever return a replacement value.
	if len(alice.cm.LocalChanges.Proposed) != 0 {
		t.Fatalf("original alice cm was mutated")
	}
}

// TestSendFulfillUnknownHtlc checks that resolving an id absent from the
// local commitment's incoming HTLC set is rejected.
func TestSendFulfillUnknownHtlc(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	var preimage [32]byte
	_, _, err := SendFulfill(alice.cm, 99, preimage)
	if err != ErrUnknownHtlcID {
		t.Fatalf("expected ErrUnknownHtlcID, got %v", err)
	}
}

// TestSendFulfillBadPreimage checks that a preimage that doesn't hash to
// the HTLC's payment hash is rejected before anything is staged.
func TestSendFulfillBadPreimage(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	var wrongPreimage [32]byte
	copy(wrongPreimage[:], []byte("not the right preimage at all!!"))

	_, _, err := SendFulfill(alice.cm, 1, wrongPreimage)
	if err != ErrInvalidPaymentPreimage {
		t.Fatalf("expected ErrInvalidPaymentPreimage, got %v", err)
	}
}

// TestSendFulfillAlreadySent checks that a second fulfill/fail attempt for
// an HTLC that already has one pending is rejected.
func TestSendFulfillAlreadySent(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	preimage := sha256.Sum256([]byte("payment-preimage"))
	_, aliceNext, err := SendFulfill(alice.cm, 1, preimage)
	if err != nil {
		t.Fatalf("first send_fulfill failed: %v", err)
	}

	_, _, err = SendFulfill(aliceNext, 1, preimage)
	if err != ErrHtlcAlreadySent {
		t.Fatalf("expected ErrHtlcAlreadySent, got %v", err)
	}
}

// TestSendFailMalformedRequiresBadonionBit checks that a fail_malformed
// code missing the BADONION bit is rejected outright.
func TestSendFailMalformedRequiresBadonionBit(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	_, _, err := SendFailMalformed(alice.cm, 1, 0x0001)
	if err != ErrInvalidFailureCode {
		t.Fatalf("expected ErrInvalidFailureCode, got %v", err)
	}

	_, next, err := SendFailMalformed(alice.cm, 1, 0x8001)
	if err != nil {
		t.Fatalf("valid BADONION-tagged code should be accepted: %v", err)
	}
	if len(next.LocalChanges.Proposed) != 1 {
		t.Fatalf("expected one proposed change")
	}
}

// TestSendFeeOnlyFunder checks the funder-only restriction on
// update_fee, in both directions.
func TestSendFeeOnlyFunder(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	if _, _, err := SendFee(bob.cm, 10_000); err != ErrApiMisuse {
		t.Fatalf("expected ErrApiMisuse from fundee SendFee, got %v", err)
	}

	if _, _, err := SendFee(alice.cm, 10_000); err != nil {
		t.Fatalf("funder SendFee should be accepted: %v", err)
	}
}

// TestCommitmentSignedRoundTrip drives send_commit/receive_commit for a
// settled (zero-HTLC-remaining) next commitment: Alice fulfills Bob's
// HTLC, signs the next commitment for Bob, and Bob's receive_commit must
// verify Alice's signature against the commitment tx Bob independently
// builds from the same reduced spec.
func TestCommitmentSignedRoundTrip(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	preimage := sha256.Sum256([]byte("payment-preimage"))
	fulfillMsg, aliceNext, err := SendFulfill(alice.cm, 1, preimage)
	if err != nil {
		t.Fatalf("send_fulfill failed: %v", err)
	}
	_, bobNext, err := ReceiveFulfill(bob.cm, fulfillMsg)
	if err != nil {
		t.Fatalf("receive_fulfill failed: %v", err)
	}

	commitSig, aliceAfterCommit, err := SendCommit(aliceNext, alice.fundingPriv, alice.htlcPriv)
	if err != nil {
		t.Fatalf("send_commit failed: %v", err)
	}
	if len(commitSig.HtlcSigs) != 0 {
		t.Fatalf("expected zero htlc sigs once the htlc is settled, got %d",
			len(commitSig.HtlcSigs))
	}
	if aliceAfterCommit.RemoteNextCommitInfo.Waiting == nil {
		t.Fatalf("remote_next_commit_info should be Waiting after send_commit")
	}

	revokeAck, bobAfterCommit, err := ReceiveCommit(
		bobNext, commitSig, alice.fundingPriv.PubKey(), alice.htlcPriv.PubKey(),
	)
	if err != nil {
		t.Fatalf("receive_commit failed: %v", err)
	}
	if bobAfterCommit.LocalCommit.Number != 1 {
		t.Fatalf("bob's local commit number = %d, want 1", bobAfterCommit.LocalCommit.Number)
	}
	if len(bobAfterCommit.LocalCommit.HTLCs) != 0 {
		t.Fatalf("settled htlc should be gone from the new commitment, got %d",
			len(bobAfterCommit.LocalCommit.HTLCs))
	}
	if revokeAck.ChanID != htlcwire.ChannelID(bob.cm.ChannelID) {
		t.Fatalf("revoke_and_ack carries the wrong channel id")
	}
}

// TestReceiveCommitNoPendingChanges checks the precondition that
// receive_commit rejects a commitment_signed when there are no
// unacknowledged remote-originated changes.
func TestReceiveCommitNoPendingChanges(t *testing.T) {
	t.Parallel()

	_, bob := createTestChannels(t, 50_000_000)

	msg := &htlcwire.CommitSig{ChanID: htlcwire.ChannelID(bob.cm.ChannelID)}
	_, _, err := ReceiveCommit(bob.cm, msg, keyFromLabel("alice-funding").PubKey(),
		keyFromLabel("alice-htlc").PubKey())
	if err != ErrReceivedCommitSigWithNoChanges {
		t.Fatalf("expected ErrReceivedCommitSigWithNoChanges, got %v", err)
	}
}

// TestReceiveCommitSignatureCountMismatch is scenario 6 from §8: an HTLC
// that's still pending (not yet fulfilled) means the next commitment
// carries one HTLC output, so a commitment_signed with one fewer HTLC
// signature than expected must be rejected, leaving cm unchanged.
func TestReceiveCommitSignatureCountMismatch(t *testing.T) {
	t.Parallel()

	alice, bob := createTestChannels(t, 50_000_000)

	// Stage an unrelated fee update from Alice so bob has something
	// pending to commit to, without resolving the HTLC -- it must still
	// be outstanding on the next commitment.
	feeMsg, aliceNext, err := SendFee(alice.cm, 7000)
	if err != nil {
		t.Fatalf("send_fee failed: %v", err)
	}
	bobNext, err := ReceiveFee(bob.cm, feeMsg, 7000)
	if err != nil {
		t.Fatalf("receive_fee failed: %v", err)
	}

	commitSig, _, err := SendCommit(aliceNext, alice.fundingPriv, alice.htlcPriv)
	if err != nil {
		t.Fatalf("send_commit failed: %v", err)
	}
	if len(commitSig.HtlcSigs) != 1 {
		t.Fatalf("expected exactly one htlc signature, got %d", len(commitSig.HtlcSigs))
	}

	truncated := &htlcwire.CommitSig{
		ChanID:    commitSig.ChanID,
		CommitSig: commitSig.CommitSig,
		HtlcSigs:  commitSig.HtlcSigs[:0],
	}

	beforeNumber := bobNext.LocalCommit.Number
	beforeProposed := len(bobNext.RemoteChanges.Proposed)
	_, _, err = ReceiveCommit(bobNext, truncated, alice.fundingPriv.PubKey(), alice.htlcPriv.PubKey())
	mismatch, ok := err.(*SignatureCountMismatchError)
	if !ok {
		t.Fatalf("expected *SignatureCountMismatchError, got %T: %v", err, err)
	}
	if mismatch.Expected != 1 || mismatch.Got != 0 {
		t.Fatalf("mismatch = %+v, want Expected=1 Got=0", mismatch)
	}
	if bobNext.LocalCommit.Number != beforeNumber ||
		len(bobNext.RemoteChanges.Proposed) != beforeProposed {
		t.Fatalf("bobNext should be unchanged by a failed receive_commit")
	}
}

// TestSendCommitRequiresRevocation checks the precondition that
// send_commit refuses to sign while waiting on the peer's revoke_and_ack.
func TestSendCommitRequiresRevocation(t *testing.T) {
	t.Parallel()

	alice, _ := createTestChannels(t, 50_000_000)

	waiting := alice.cm.clone()
	waiting.RemoteNextCommitInfo = RemoteNextCommitInfo{Waiting: &CommitmentTxn{}}

	_, _, err := SendCommit(waiting, alice.fundingPriv, alice.htlcPriv)
	if err != ErrCanNotSignBeforeRevocation {
		t.Fatalf("expected ErrCanNotSignBeforeRevocation, got %v", err)
	}

	// Even with a revocation point available, an outstanding Waiting
	// commitment must still block a second commitment_signed.
	stillWaiting := alice.cm.clone()
	stillWaiting.RemoteNextCommitInfo = RemoteNextCommitInfo{
		Revoked: alice.cm.RemoteNextCommitInfo.Revoked,
		Waiting: &CommitmentTxn{},
	}
	_, _, err = SendCommit(stillWaiting, alice.fundingPriv, alice.htlcPriv)
	if err != ErrCanNotSignBeforeRevocation {
		t.Fatalf("expected ErrCanNotSignBeforeRevocation while waiting, got %v", err)
	}
}
