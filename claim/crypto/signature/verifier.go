package signature

import "github.com/kycgate/go-idclaim/did"

type Verifier interface {
	DID() did.DID
	Code() uint64
	// Takes a byte encoded message and verifies that it is signed by the
	// corresponding signer.
	Verify(msg []byte, sig Signature) bool
	Encode() []byte
}
