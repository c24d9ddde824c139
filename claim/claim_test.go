package claim_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kycgate/go-idclaim/claim"
)

func TestCreate(t *testing.T) {
	t.Run("succeeds across the tier and risk domain", func(t *testing.T) {
		tiers := []claim.Tier{claim.TierUnverified, claim.TierBasic, claim.TierVerified, claim.TierPremium}
		for _, tier := range tiers {
			for _, score := range []uint32{0, 1, 50, 99, 100} {
				t.Run(fmt.Sprintf("%s/%d", tier, score), func(t *testing.T) {
					before := time.Now()
					c, err := claim.Create("GADDR", tier, score, time.Hour)
					require.NoError(t, err)
					after := time.Now()

					require.Equal(t, "GADDR", c.Address)
					require.Equal(t, tier, c.Tier)
					require.Equal(t, score, c.RiskScore)
					require.Empty(t, c.Issuer)

					// expiry == creation + validity, within a second of
					// clock read slop
					require.GreaterOrEqual(t, c.Expiration, uint64(before.Add(time.Hour).Unix()))
					require.LessOrEqual(t, c.Expiration, uint64(after.Add(time.Hour).Unix())+1)
				})
			}
		}
	})

	t.Run("rejects risk score above 100", func(t *testing.T) {
		for _, score := range []uint32{101, 200, ^uint32(0)} {
			_, err := claim.Create("GADDR", claim.TierBasic, score, time.Hour)
			require.Error(t, err)

			var rerr claim.RiskScoreOutOfRangeError
			require.ErrorAs(t, err, &rerr)
			require.Equal(t, "RiskScoreOutOfRange", rerr.Name())
			require.Equal(t, score, rerr.Score())
			require.True(t, claim.IsValidation(err))
		}
	})

	t.Run("rejects non-future expiry", func(t *testing.T) {
		for _, validity := range []time.Duration{0, -time.Second, -24 * time.Hour} {
			_, err := claim.Create("GADDR", claim.TierBasic, 10, validity)
			require.Error(t, err)

			var eerr claim.ExpiryNotFutureError
			require.ErrorAs(t, err, &eerr)
			require.Equal(t, "ExpiryNotFuture", eerr.Name())
			require.True(t, claim.IsValidation(err))
		}
	})
}

func TestTierString(t *testing.T) {
	require.Equal(t, "unverified", claim.TierUnverified.String())
	require.Equal(t, "basic", claim.TierBasic.String())
	require.Equal(t, "verified", claim.TierVerified.String())
	require.Equal(t, "premium", claim.TierPremium.String())
	require.Equal(t, "unknown", claim.Tier(42).String())
}
