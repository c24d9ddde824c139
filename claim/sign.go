package claim

import (
	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multihash"

	"github.com/kycgate/go-idclaim/claim/crypto/signature"
	"github.com/kycgate/go-idclaim/principal"
)

// Signed is a read-only view of a claim and the signature issued over its
// canonical bytes. It exposes no mutators: once signed, a claim cannot be
// altered without going through Sign again, so a signature can never be
// silently invalidated by a later field write. Views are produced only by
// Sign and Extract.
type Signed interface {
	Address() string
	Tier() Tier
	RiskScore() uint32
	Expiration() UTCUnixTimestamp
	Issuer() string
	// Claim returns a copy of the underlying claim value, e.g. for
	// Validate. Mutating the copy does not affect the view.
	Claim() IdentityClaim
	Signature() signature.SignatureView
	// Link is the content address of the canonical claim payload. Callers
	// that keep deny-lists or indexes outside this core can key them by
	// it.
	Link() datamodel.Link
}

type signedClaim struct {
	claim IdentityClaim
	sig   signature.SignatureView
}

var _ Signed = (*signedClaim)(nil)

func (s *signedClaim) Address() string {
	return s.claim.Address
}

func (s *signedClaim) Tier() Tier {
	return s.claim.Tier
}

func (s *signedClaim) RiskScore() uint32 {
	return s.claim.RiskScore
}

func (s *signedClaim) Expiration() UTCUnixTimestamp {
	return s.claim.Expiration
}

func (s *signedClaim) Issuer() string {
	return s.claim.Issuer
}

func (s *signedClaim) Claim() IdentityClaim {
	return s.claim
}

func (s *signedClaim) Signature() signature.SignatureView {
	return s.sig
}

func (s *signedClaim) Link() datamodel.Link {
	c, _ := cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   multihash.SHA2_256,
		MhLength: -1,
	}.Sum(Serialize(s.claim))
	return cidlink.Link{Cid: c}
}

// Sign serializes the claim canonically and signs the payload with the
// passed signing capability. The claim must be in a signable state:
// address and issuer assigned. The capability is not retained after the
// call returns.
//
// The raw signature is 64 bytes for the reference Ed25519 scheme; it
// travels wrapped in a self describing envelope, see the signature
// package.
func Sign(c IdentityClaim, signer principal.Signer) (Signed, error) {
	if c.Address == "" {
		return nil, NewEmptyAddressError()
	}
	if c.Issuer == "" {
		return nil, NewEmptyIssuerError()
	}
	return &signedClaim{claim: c, sig: signer.Sign(Serialize(c))}, nil
}

// Verify recomputes the canonical bytes of the claim and checks the
// signature against the passed public key. An envelope with an algorithm
// tag the protocol does not support yields
// UnsupportedSignatureAlgorithmError. Any mismatch, a tampered field, a
// tampered signature byte or a key from a different pair, yields
// InvalidSignatureError. Verify performs no business validation: use
// Validate for expiry and field sanity.
func Verify(c IdentityClaim, sig signature.Signature, verifier principal.Verifier) error {
	if _, err := signature.CodeName(sig.Code()); err != nil {
		return NewUnsupportedSignatureAlgorithmError(sig.Code())
	}
	if !verifier.Verify(Serialize(c), sig) {
		return NewInvalidSignatureError(c.Issuer, verifier.DID())
	}
	return nil
}

// VerifySigned verifies a signed claim view against the passed public
// key.
func VerifySigned(s Signed, verifier principal.Verifier) error {
	return Verify(s.Claim(), s.Signature(), verifier)
}
