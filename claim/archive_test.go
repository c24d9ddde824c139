package claim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kycgate/go-idclaim/claim"
	"github.com/kycgate/go-idclaim/claim/crypto/signature"
	"github.com/kycgate/go-idclaim/claim/datamodel"
	"github.com/kycgate/go-idclaim/testing/fixtures"
	"github.com/kycgate/go-idclaim/testing/helpers"
)

func TestArchive(t *testing.T) {
	t.Run("round trip preserves signature validity", func(t *testing.T) {
		c := helpers.RandomClaim()
		s, err := claim.Sign(c, fixtures.Issuer)
		require.NoError(t, err)

		b, err := claim.Archive(s)
		require.NoError(t, err)

		x, err := claim.Extract(b)
		require.NoError(t, err)

		require.Equal(t, s.Address(), x.Address())
		require.Equal(t, s.Tier(), x.Tier())
		require.Equal(t, s.RiskScore(), x.RiskScore())
		require.Equal(t, s.Expiration(), x.Expiration())
		require.Equal(t, s.Issuer(), x.Issuer())
		require.Equal(t, s.Signature().Bytes(), x.Signature().Bytes())
		require.Equal(t, s.Link().String(), x.Link().String())

		require.NoError(t, claim.VerifySigned(x, fixtures.Issuer.Verifier()))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := claim.Extract([]byte{0x01, 0x02, 0x03})
		require.Error(t, err)
	})

	t.Run("rejects malformed signature envelopes", func(t *testing.T) {
		archive := func(sig []byte) []byte {
			return helpers.Must(datamodel.Encode(&datamodel.SignedClaimModel{
				Add: "GADDR", Tir: 1, Rsk: 10, Exp: 123, Iss: "GISS", Sig: sig,
			}))
		}

		// a doctored envelope must be refused outright, never returned as
		// a view whose accessors read out of range
		for name, sig := range map[string][]byte{
			"empty":            {},
			"lone byte":        {0x01},
			"truncated header": {0xed},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := claim.Extract(archive(sig))
				require.Error(t, err)
			})
		}

		t.Run("declared size disagrees with payload", func(t *testing.T) {
			c := helpers.RandomClaim()
			s, err := claim.Sign(c, fixtures.Issuer)
			require.NoError(t, err)

			truncated := s.Signature().Bytes()[:10]
			_, err = claim.Extract(archive(truncated))
			require.Error(t, err)
		})

		t.Run("unsupported algorithm tag", func(t *testing.T) {
			bad := signature.NewSignature(0xd000, make([]byte, 64))
			_, err := claim.Extract(archive(bad.Bytes()))

			var uerr claim.UnsupportedSignatureAlgorithmError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, uint64(0xd000), uerr.Code())
			require.True(t, claim.IsCrypto(err))
		})

		t.Run("wrong raw size", func(t *testing.T) {
			short := signature.NewSignature(signature.EdDSA, make([]byte, 32))
			_, err := claim.Extract(archive(short.Bytes()))
			require.Error(t, err)
		})
	})

	t.Run("rejects empty identity fields", func(t *testing.T) {
		// an extracted claim must still satisfy the signable invariants,
		// so a doctored archive with a blank address or issuer is refused
		b, err := datamodel.Encode(&datamodel.SignedClaimModel{
			Add: "", Tir: 1, Rsk: 10, Exp: 123, Iss: "GISS", Sig: []byte{0x01},
		})
		require.NoError(t, err)
		_, err = claim.Extract(b)
		var aerr claim.EmptyAddressError
		require.ErrorAs(t, err, &aerr)

		b, err = datamodel.Encode(&datamodel.SignedClaimModel{
			Add: "GADDR", Tir: 1, Rsk: 10, Exp: 123, Iss: "", Sig: []byte{0x01},
		})
		require.NoError(t, err)
		_, err = claim.Extract(b)
		var ierr claim.EmptyIssuerError
		require.ErrorAs(t, err, &ierr)
	})
}
