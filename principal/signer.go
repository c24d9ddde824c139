package principal

import (
	"github.com/kycgate/go-idclaim/claim/crypto/signature"
	"github.com/kycgate/go-idclaim/did"
)

// Principal is a party identified by a DID.
type Principal interface {
	DID() did.DID
}

// Signer is the narrow signing capability a claim issuer holds. It signs
// byte encoded messages without exposing raw private key material to the
// code it is passed to, keeping key custody outside the claim core.
type Signer interface {
	Principal
	// Takes a byte encoded message and produces a verifiable signature.
	Sign(msg []byte) signature.SignatureView

	// SignatureCode is the multicodec of the signature algorithm, used to
	// tag signatures so they self describe how they were produced.
	SignatureCode() uint64
	// SignatureAlgorithm is the human readable name of the signature
	// algorithm.
	SignatureAlgorithm() string

	Code() uint64
	Verifier() Verifier
	Encode() []byte
	// Raw private key material. Needed only by key custody code that
	// persists or exports keys, never by the signing path itself.
	Raw() []byte
}
