package principal

import (
	"github.com/kycgate/go-idclaim/claim/crypto/signature"
)

// Verifier checks that messages were signed by the principal it
// identifies. It holds only public key material.
type Verifier interface {
	signature.Verifier
	// Raw public key bytes without the multicodec tag.
	Raw() []byte
}
