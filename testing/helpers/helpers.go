package helpers

import (
	crand "crypto/rand"
	"time"

	"github.com/kycgate/go-idclaim/claim"
	"github.com/kycgate/go-idclaim/principal"
	"github.com/kycgate/go-idclaim/principal/ed25519/signer"
)

// Must takes return values from a function and returns the non-error one.
// If the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

func RandomSigner() principal.Signer {
	return Must(signer.Generate())
}

// RandomClaim builds an unsigned claim with plausible fields, valid for
// 30 days, issuer assigned.
func RandomClaim() claim.IdentityClaim {
	c := Must(claim.Create(RandomAddress(), claim.TierVerified, 25, 30*24*time.Hour))
	c.Issuer = RandomSigner().DID().String()
	return c
}

const strkeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// RandomAddress produces a plausible account identifier in the G-prefixed
// base32 shape used on chain.
func RandomAddress() string {
	b := RandomBytes(55)
	out := make([]byte, 56)
	out[0] = 'G'
	for i, v := range b {
		out[i+1] = strkeyAlphabet[int(v)%len(strkeyAlphabet)]
	}
	return string(out)
}
