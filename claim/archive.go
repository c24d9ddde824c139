package claim

import (
	"fmt"

	"github.com/kycgate/go-idclaim/claim/crypto/signature"
	adm "github.com/kycgate/go-idclaim/claim/datamodel"
)

// Archive encodes a signed claim as a self describing dag-cbor node, the
// delivery container handed to downstream collaborators. The canonical
// signing payload is carried losslessly: Extract yields a view whose
// signature still verifies.
func Archive(s Signed) ([]byte, error) {
	return adm.Encode(&adm.SignedClaimModel{
		Add: s.Address(),
		Tir: uint64(s.Tier()),
		Rsk: uint64(s.RiskScore()),
		Exp: s.Expiration(),
		Iss: s.Issuer(),
		Sig: s.Signature().Bytes(),
	})
}

// Extract decodes an archived signed claim back into a read-only view.
// Archive bytes arrive from outside the trust boundary, so the signable
// invariants and the structure of the signature envelope are checked
// before a view is returned. Extract does not verify the signature or
// validate the claim, callers do that with Verify and Validate.
func Extract(b []byte) (Signed, error) {
	m, err := adm.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding archived claim: %w", err)
	}
	if m.Add == "" {
		return nil, NewEmptyAddressError()
	}
	if m.Iss == "" {
		return nil, NewEmptyIssuerError()
	}
	if m.Tir > uint64(^uint32(0)) || m.Rsk > uint64(^uint32(0)) {
		return nil, fmt.Errorf("archived claim field out of range")
	}
	sig, err := signature.DecodeChecked(m.Sig)
	if err != nil {
		return nil, fmt.Errorf("decoding archived signature: %w", err)
	}
	if _, err := signature.CodeName(sig.Code()); err != nil {
		return nil, NewUnsupportedSignatureAlgorithmError(sig.Code())
	}
	if sig.Size() != signature.EdDSARawSize {
		return nil, fmt.Errorf("expected %d byte EdDSA signature, got %d", signature.EdDSARawSize, sig.Size())
	}
	return &signedClaim{
		claim: IdentityClaim{
			Address:    m.Add,
			Tier:       Tier(m.Tir),
			RiskScore:  uint32(m.Rsk),
			Expiration: m.Exp,
			Issuer:     m.Iss,
		},
		sig: signature.NewSignatureView(sig),
	}, nil
}
