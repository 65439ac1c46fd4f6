package lnwallet

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
)

// SingleTweakBytes computes the hash of the commitment point and base
// point, used to derive per-commitment keys that are non-linkable across
// channel states.
func SingleTweakBytes(commitPoint, basePoint *btcec.PublicKey) []byte {
	h := sha256.New()
	h.Write(commitPoint.SerializeCompressed())
	h.Write(basePoint.SerializeCompressed())
	return h.Sum(nil)
}

// TweakPubKey tweaks a base point by the per-commitment point, producing
// the key actually placed in a commitment output or HTLC script. Doing
// this for every commitment keeps none of a party's per-state keys
// linkable to any other, even though they all derive from the same base
// point.
func TweakPubKey(basePoint, commitPoint *btcec.PublicKey) *btcec.PublicKey {
	tweakBytes := SingleTweakBytes(commitPoint, basePoint)
	return TweakPubKeyWithTweak(basePoint, tweakBytes)
}

// TweakPubKeyWithTweak adds the given tweak scalar (as a point, G*tweak)
// to pubKey.
func TweakPubKeyWithTweak(pubKey *btcec.PublicKey, tweakBytes []byte) *btcec.PublicKey {
	var base btcec.JacobianPoint
	pubKey.AsJacobian(&base)

	var tweakScalar btcec.ModNScalar
	tweakScalar.SetByteSlice(tweakBytes)

	var tweakPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &tweakPoint)

	var result btcec.JacobianPoint
	btcec.AddNonConst(&base, &tweakPoint, &result)
	result.ToAffine()

	return btcec.NewPublicKey(&result.X, &result.Y)
}

// TweakPrivKey is the private key counterpart of TweakPubKeyWithTweak: it
// adds the tweak scalar directly to the base private key.
func TweakPrivKey(basePriv *btcec.PrivateKey, tweakBytes []byte) *btcec.PrivateKey {
	var tweakScalar btcec.ModNScalar
	tweakScalar.SetByteSlice(tweakBytes)

	privScalar := basePriv.Key
	privScalar.Add(&tweakScalar)

	return btcec.PrivKeyFromScalar(&privScalar)
}

// DeriveRevocationPubkey derives the public key a counterparty will be
// able to sign for once it has learned the per-commitment secret
// corresponding to commitPoint, implementing the two-term BOLT-3
// construction:
//
//	revocationPubkey = revokeBasePoint*sha256(revokeBasePoint||commitPoint)
//	                 + commitPoint*sha256(commitPoint||revokeBasePoint)
//
// Summing two independently-tweaked points (rather than adding a single
// preimage to one base point, as the pre-shachain scheme did) is what
// lets either party contribute entropy to the revocation key: the
// producer of commitPoint can't predict revokeBasePoint's tweak, and vice
// versa.
func DeriveRevocationPubkey(revokeBasePoint, commitPoint *btcec.PublicKey) *btcec.PublicKey {
	h1 := sha256.Sum256(append(
		revokeBasePoint.SerializeCompressed(),
		commitPoint.SerializeCompressed()...,
	))
	h2 := sha256.Sum256(append(
		commitPoint.SerializeCompressed(),
		revokeBasePoint.SerializeCompressed()...,
	))

	var revokeTerm, commitTerm btcec.JacobianPoint
	scalarMultPoint(revokeBasePoint, h1[:], &revokeTerm)
	scalarMultPoint(commitPoint, h2[:], &commitTerm)

	var result btcec.JacobianPoint
	btcec.AddNonConst(&revokeTerm, &commitTerm, &result)
	result.ToAffine()

	return btcec.NewPublicKey(&result.X, &result.Y)
}

// DeriveRevocationPrivKey is the private key counterpart of
// DeriveRevocationPubkey: given the revocation base private key and the
// per-commitment secret, it computes the private key for the revocation
// public key the counterparty derived for that commitment.
func DeriveRevocationPrivKey(revokeBasePriv, commitSecret *btcec.PrivateKey) *btcec.PrivateKey {
	revokeBasePoint := revokeBasePriv.PubKey()
	commitPoint := commitSecret.PubKey()

	h1 := sha256.Sum256(append(
		revokeBasePoint.SerializeCompressed(),
		commitPoint.SerializeCompressed()...,
	))
	h2 := sha256.Sum256(append(
		commitPoint.SerializeCompressed(),
		revokeBasePoint.SerializeCompressed()...,
	))

	var h1Scalar, h2Scalar btcec.ModNScalar
	h1Scalar.SetByteSlice(h1[:])
	h2Scalar.SetByteSlice(h2[:])

	revokeTerm := revokeBasePriv.Key
	revokeTerm.Mul(&h1Scalar)

	commitTerm := commitSecret.Key
	commitTerm.Mul(&h2Scalar)

	revokeTerm.Add(&commitTerm)

	return btcec.PrivKeyFromScalar(&revokeTerm)
}

// scalarMultPoint multiplies an arbitrary point (not necessarily the
// generator) by a scalar given as a byte slice.
func scalarMultPoint(point *btcec.PublicKey, scalarBytes []byte, result *btcec.JacobianPoint) {
	var p btcec.JacobianPoint
	point.AsJacobian(&p)

	var scalar btcec.ModNScalar
	scalar.SetByteSlice(scalarBytes)

	btcec.ScalarMultNonConst(&scalar, &p, result)
}

// CommitmentKeyRing holds the full set of keys needed to construct and
// spend one version (ours or theirs) of a commitment transaction: the
// revocation, delay, payment, and HTLC keys, all tweaked by the
// commitment point for that particular state.
type CommitmentKeyRing struct {
	// CommitPoint is the per-commitment point this key ring was
	// derived for.
	CommitPoint *btcec.PublicKey

	// LocalHtlcKey and RemoteHtlcKey are the HTLC-script keys for the
	// local and remote party, tweaked for this commitment.
	LocalHtlcKey  *btcec.PublicKey
	RemoteHtlcKey *btcec.PublicKey

	// ToLocalKey is the key that gates the CSV-delayed output paying
	// back to the owner of this commitment.
	ToLocalKey *btcec.PublicKey

	// ToRemoteKey is the key for the unencumbered P2WPKH output paying
	// the counterparty.
	ToRemoteKey *btcec.PublicKey

	// RevocationKey is the key the counterparty can sign for once
	// they've learned this commitment's revocation secret.
	RevocationKey *btcec.PublicKey
}

// DeriveCommitmentKeys computes the full key ring for one party's version
// of a commitment transaction. isOurCommit selects whose commitment is
// being built: the CSV-delayed output always pays the owner of that
// commitment, and the revocation key is always derivable by whichever
// party does *not* own it.
func DeriveCommitmentKeys(commitPoint *btcec.PublicKey, isOurCommit bool,
	localCfg, remoteCfg *ChannelConfig) *CommitmentKeyRing {

	keyRing := &CommitmentKeyRing{
		CommitPoint: commitPoint,

		LocalHtlcKey:  TweakPubKey(localCfg.HtlcBasePoint, commitPoint),
		RemoteHtlcKey: TweakPubKey(remoteCfg.HtlcBasePoint, commitPoint),
	}

	var (
		delayBasePoint      *btcec.PublicKey
		remoteBasePoint     *btcec.PublicKey
		revocationBasePoint *btcec.PublicKey
	)
	if isOurCommit {
		delayBasePoint = localCfg.DelayBasePoint
		remoteBasePoint = remoteCfg.PaymentBasePoint
		revocationBasePoint = remoteCfg.RevocationBasePoint
	} else {
		delayBasePoint = remoteCfg.DelayBasePoint
		remoteBasePoint = localCfg.PaymentBasePoint
		revocationBasePoint = localCfg.RevocationBasePoint
	}

	keyRing.ToLocalKey = TweakPubKey(delayBasePoint, commitPoint)
	keyRing.ToRemoteKey = TweakPubKey(remoteBasePoint, commitPoint)
	keyRing.RevocationKey = DeriveRevocationPubkey(revocationBasePoint, commitPoint)

	return keyRing
}
