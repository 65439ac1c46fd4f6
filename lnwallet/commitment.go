package lnwallet

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/lightninglabs/chancore/htlcwire"
	"github.com/lightninglabs/chancore/shachain"
)

// TxVersionNumberOfCommitmentTxs is the fixed version field every
// commitment transaction must carry; validate_commitment_tx rejects
// anything else.
const TxVersionNumberOfCommitmentTxs int32 = 2

// obscuredNumberMask is the 48-bit mask a commitment number is confined
// to before obscuring; commitment numbers never exceed this range.
const obscuredNumberMask = (1 << 48) - 1

// locktimeTag and sequenceTag are the fixed top bytes that mark a
// commitment transaction's locktime/sequence fields as carrying an
// obscured commitment number, rather than a real timelock.
const (
	locktimeTag uint32 = 0x20000000
	sequenceTag uint32 = 0x80000000
)

// CommitmentNumber is the monotone index of a channel's commitment
// transactions, confined to 48 bits.
type CommitmentNumber uint64

// computeObscureFactor derives the 48-bit value a commitment number is
// XORed with before being embedded into a commitment transaction,
// following BOLT-3: the low 48 bits of
// sha256(funder_payment_basepoint || fundee_payment_basepoint).
func computeObscureFactor(funderPayBasePoint, fundeePayBasePoint *btcec.PublicKey) uint64 {
	h := sha256.New()
	h.Write(funderPayBasePoint.SerializeCompressed())
	h.Write(fundeePayBasePoint.SerializeCompressed())
	digest := h.Sum(nil)

	var factor uint64
	for _, b := range digest[len(digest)-6:] {
		factor = (factor << 8) | uint64(b)
	}
	return factor
}

// ObscureCommitmentNumber XORs a commitment number with the obscure
// factor derived from both parties' payment basepoints, and splits the
// result across the (locktime, sequence) pair a commitment transaction
// embeds it in.
func ObscureCommitmentNumber(num CommitmentNumber, isLocalFunder bool,
	localPayBasePoint, remotePayBasePoint *btcec.PublicKey) (locktime, sequence uint32) {

	funder, fundee := localPayBasePoint, remotePayBasePoint
	if !isLocalFunder {
		funder, fundee = remotePayBasePoint, localPayBasePoint
	}

	obscured := uint64(num) ^ computeObscureFactor(funder, fundee)

	locktime = locktimeTag | uint32(obscured>>24)
	sequence = sequenceTag | uint32(obscured&0xffffff)
	return locktime, sequence
}

// ObscuredCommitmentNumber is the raw 48-bit value read off a
// commitment transaction's (locktime, sequence) pair before it has been
// XORed with either party's obscure factor.
type ObscuredCommitmentNumber uint64

// decodeObscuredField extracts the raw 48-bit obscured field from a
// commitment transaction's locktime/sequence pair, checking both halves
// carry their fixed tag byte.
func decodeObscuredField(locktime, sequence uint32) (ObscuredCommitmentNumber, error) {
	if locktime&0xff000000 != locktimeTag {
		return 0, &InvalidCommitmentTxError{
			Reason: fmt.Sprintf("locktime %#x missing obscuring tag %#x",
				locktime, locktimeTag),
		}
	}
	if sequence&0xff000000 != sequenceTag {
		return 0, &InvalidCommitmentTxError{
			Reason: fmt.Sprintf("sequence %#x missing obscuring tag %#x",
				sequence, sequenceTag),
		}
	}

	obscured := uint64(locktime&0xffffff)<<24 | uint64(sequence&0xffffff)
	return ObscuredCommitmentNumber(obscured), nil
}

// DecodeObscuredCommitmentNumber reverses ObscureCommitmentNumber, given
// the raw locktime/sequence fields read off a commitment transaction.
func DecodeObscuredCommitmentNumber(locktime, sequence uint32,
	isLocalFunder bool, localPayBasePoint,
	remotePayBasePoint *btcec.PublicKey) (CommitmentNumber, error) {

	obscured, err := decodeObscuredField(locktime, sequence)
	if err != nil {
		return 0, err
	}

	funder, fundee := localPayBasePoint, remotePayBasePoint
	if !isLocalFunder {
		funder, fundee = remotePayBasePoint, localPayBasePoint
	}

	num := uint64(obscured) ^ computeObscureFactor(funder, fundee)
	return CommitmentNumber(num & obscuredNumberMask), nil
}

// unobscure applies the obscure factor derived from both parties'
// payment basepoints to a raw obscured field, recovering the real
// commitment number.
func (o ObscuredCommitmentNumber) unobscure(isLocalFunder bool,
	localPayBasePoint, remotePayBasePoint *btcec.PublicKey) CommitmentNumber {

	funder, fundee := localPayBasePoint, remotePayBasePoint
	if !isLocalFunder {
		funder, fundee = remotePayBasePoint, localPayBasePoint
	}

	num := uint64(o) ^ computeObscureFactor(funder, fundee)
	return CommitmentNumber(num & obscuredNumberMask)
}

// PerCommitmentSecretProducer derives this party's own per-commitment
// secrets, one per CommitmentNumber, from a single 32-byte seed. It's a
// thin domain-specific wrapper over shachain.Producer, translating
// CommitmentNumber into the shachain height convention (the height is
// the commitment number itself, so both count up together).
type PerCommitmentSecretProducer struct {
	producer *shachain.Producer
}

// NewPerCommitmentSecretProducer creates a producer rooted at seed.
func NewPerCommitmentSecretProducer(seed shachain.Secret) *PerCommitmentSecretProducer {
	return &PerCommitmentSecretProducer{producer: shachain.NewProducer(seed)}
}

// SecretAt returns the per-commitment secret for the given commitment
// number and its corresponding curve point.
func (p *PerCommitmentSecretProducer) SecretAt(num CommitmentNumber) (shachain.Secret, *btcec.PublicKey) {
	secret := p.producer.AtHeight(uint64(num))
	_, pub := btcec.PrivKeyFromBytes(secret[:])
	return secret, pub
}

// PerCommitmentSecretStore retains the counterparty's revealed
// per-commitment secrets, letting any earlier one be rederived from at
// most shachain's 49 retained entries.
type PerCommitmentSecretStore struct {
	store *shachain.Store
}

// NewPerCommitmentSecretStore creates an empty store.
func NewPerCommitmentSecretStore() *PerCommitmentSecretStore {
	return &PerCommitmentSecretStore{store: shachain.NewStore()}
}

// Insert records the secret revealed for the given commitment number.
func (s *PerCommitmentSecretStore) Insert(num CommitmentNumber, secret shachain.Secret) error {
	return s.store.Insert(uint64(num), secret)
}

// SecretAt returns the secret for the given commitment number, if it's
// derivable from what's been inserted so far.
func (s *PerCommitmentSecretStore) SecretAt(num CommitmentNumber) (shachain.Secret, bool) {
	return s.store.Get(uint64(num))
}

// HTLCDirection identifies whether an HTLC is offered (Out) or received
// (In) from the local party's point of view.
type HTLCDirection uint8

const (
	// Out marks an HTLC the local party offered to the counterparty.
	Out HTLCDirection = iota

	// In marks an HTLC the local party received from the counterparty.
	In
)

// HTLC represents one htlc-add update: a conditional payment pending on
// a commitment transaction.
type HTLC struct {
	// ID uniquely identifies this HTLC within the channel, assigned by
	// whichever party offered it.
	ID uint64

	// Direction says whether this HTLC is outgoing or incoming from the
	// local party's perspective.
	Direction HTLCDirection

	// Amount is the HTLC's value.
	Amount htlcwire.MilliSatoshi

	// PaymentHash is the hash the HTLC's preimage must match to settle.
	PaymentHash [32]byte

	// CltvExpiry is the absolute block height after which an offered
	// HTLC can be timed out.
	CltvExpiry uint32

	// OnionBlob is the Sphinx onion packet routing this HTLC to the
	// next hop. Its contents are opaque to the commitment core.
	OnionBlob [1366]byte
}

// updateKind identifies the kind of update staged in a Changes buffer.
type updateKind uint8

const (
	updateAdd updateKind = iota
	updateFulfill
	updateFail
	updateFailMalformed
	updateFee
)

// PendingUpdate is one staged update to a channel's HTLC set or fee
// rate, tagged by kind, carried through the proposed/signed/acked
// stages of a Changes buffer.
type PendingUpdate struct {
	Kind updateKind

	// Add is populated when Kind == updateAdd.
	Add *HTLC

	// HtlcID identifies the HTLC a fulfill/fail/fail_malformed update
	// targets.
	HtlcID uint64

	// Preimage is populated when Kind == updateFulfill.
	Preimage [32]byte

	// FailReason is populated when Kind == updateFail.
	FailReason []byte

	// FailCode is populated when Kind == updateFailMalformed.
	FailCode uint16

	// FeePerKw is populated when Kind == updateFee.
	FeePerKw btcutil.Amount
}

// Changes is the three-stage buffer of updates one party has proposed:
// proposed updates become signed once embedded in a commitment_signed,
// then acked once the counterparty's revoke_and_ack confirms them.
// Transitions are pure rebinding — see engine.go's send_commit/
// receive_commit — so that a discarded Commitments value remains valid
// for diagnostics.
type Changes struct {
	Proposed []PendingUpdate
	Signed   []PendingUpdate
	Acked    []PendingUpdate
}

// ChannelConfig carries one party's negotiated channel parameters and
// base points. Base points are tweaked per commitment by
// DeriveCommitmentKeys; the untweaked points themselves never appear on
// chain.
type ChannelConfig struct {
	// DustLimit is the output value below which the commitment
	// transaction omits an output entirely.
	DustLimit btcutil.Amount

	// ChanReserve is the minimum balance this party must retain.
	ChanReserve btcutil.Amount

	// MaxPendingAmount bounds the aggregate value of this party's
	// in-flight HTLCs.
	MaxPendingAmount htlcwire.MilliSatoshi

	// MinHTLC is the smallest HTLC amount this party will accept.
	MinHTLC htlcwire.MilliSatoshi

	// MaxAcceptedHtlcs bounds the number of this party's in-flight
	// HTLCs.
	MaxAcceptedHtlcs uint16

	// CsvDelay is the relative locktime this party's to_local output
	// must satisfy on their own commitment transaction.
	CsvDelay uint16

	RevocationBasePoint *btcec.PublicKey
	PaymentBasePoint    *btcec.PublicKey
	DelayBasePoint      *btcec.PublicKey
	HtlcBasePoint       *btcec.PublicKey
}

// HtlcTx is one second-level HTLC sub-transaction (timeout or success)
// descending from a commitment transaction's HTLC output. Per the
// polymorphic-HTLC-transactions design note, both variants share this
// shape and are dispatched on IsTimeout rather than via a virtual call.
type HtlcTx struct {
	// Tx is the unsigned (or partially signed) sub-transaction.
	Tx *wire.MsgTx

	// WhichInput is the output index on the parent commitment
	// transaction this sub-transaction's sole input spends.
	WhichInput uint32

	// IsTimeout distinguishes an HTLC-timeout sub-transaction (spent by
	// the offerer after the CLTV expiry) from an HTLC-success
	// sub-transaction (spent by the receiver with the preimage).
	IsTimeout bool

	// HTLC is the HTLC this sub-transaction descends from.
	HTLC HTLC

	// WitnessScript is the redeem script of the commitment output this
	// sub-transaction spends, needed to compute and verify its
	// signature.
	WitnessScript []byte
}

// CommitmentTxn bundles a fully-constructed commitment transaction with
// the HTLC sub-transactions descending from it and the key ring it was
// built with.
type CommitmentTxn struct {
	Number CommitmentNumber
	Tx     *wire.MsgTx
	HTLCs  []HtlcTx
	Keys   *CommitmentKeyRing

	// OurBalance and TheirBalance are the settled balances reflected on
	// this commitment, net of the projected fee.
	OurBalance   htlcwire.MilliSatoshi
	TheirBalance htlcwire.MilliSatoshi

	// FeePerKw is the fee rate this commitment was built with.
	FeePerKw btcutil.Amount
}

// RemoteCommitChain tracks the remote party's commitment chain tail: the
// last commitment we've signed for them, and the HTLCs locked into it.
type RemoteCommitChain struct {
	Tail *CommitmentTxn
}

// RemoteNextCommitInfo records whether the engine may sign a new
// commitment for the remote party: Revoked holds the next per-commitment
// point once the remote party's prior commitment has been revoked;
// Waiting holds the commitment we've already sent and are waiting on a
// revoke_and_ack for. The engine may not issue a new commitment_signed
// while Waiting.
type RemoteNextCommitInfo struct {
	Revoked *btcec.PublicKey
	Waiting *CommitmentTxn
}

// IsWaiting reports whether a commitment_signed is outstanding.
func (r *RemoteNextCommitInfo) IsWaiting() bool { return r.Waiting != nil }

// FundingScriptCoin describes the 2-of-2 funding output the commitment
// transactions spend: its outpoint, value, redeem script, and P2WSH
// pkScript, shared read-only between local and remote tx construction.
type FundingScriptCoin struct {
	Outpoint     wire.OutPoint
	Amount       btcutil.Amount
	RedeemScript []byte
	PkScript     []byte
}

// Commitments is the full per-channel state the commitment engine
// operates on. It is constructed at channel open (outside this core) and
// thereafter only ever replaced wholesale by the engine operations in
// engine.go, never mutated in place.
type Commitments struct {
	ChannelID [32]byte

	IsFunder bool

	LocalChanCfg  ChannelConfig
	RemoteChanCfg ChannelConfig

	LocalChannelPubKeys  *btcec.PublicKey
	RemoteChannelPubKeys *btcec.PublicKey

	FundingScriptCoin FundingScriptCoin

	LocalCommit  CommitmentTxn
	RemoteCommit CommitmentTxn

	RemoteNextCommitInfo RemoteNextCommitInfo

	LocalChanges  Changes
	RemoteChanges Changes

	// OriginChannels maps an outgoing HTLC id to the upstream channel
	// and HTLC it was forwarded from, for failure/settle propagation.
	// Opaque to this core beyond being carried and pruned.
	OriginChannels map[uint64]interface{}

	LocalPerCommitSecrets  *PerCommitmentSecretProducer
	RemotePerCommitSecrets *PerCommitmentSecretStore

	FeePerKw btcutil.Amount
}
