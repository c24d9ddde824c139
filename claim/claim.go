package claim

import (
	"time"
)

// Tier is the ordinal verification level a KYC provider assigned to an
// address. The on-chain escrow policy sizes payout limits from it.
type Tier uint32

const (
	TierUnverified Tier = iota
	TierBasic
	TierVerified
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierUnverified:
		return "unverified"
	case TierBasic:
		return "basic"
	case TierVerified:
		return "verified"
	case TierPremium:
		return "premium"
	default:
		return "unknown"
	}
}

// MaxRiskScore is the upper bound of the risk score domain. Lower is less
// risky.
const MaxRiskScore = 100

// UTCUnixTimestamp is a timestamp in seconds since the Unix epoch.
type UTCUnixTimestamp = uint64

// IdentityClaim is an assertion binding a chain address to a verification
// tier and risk score, valid until Expiration. It is a plain mutable value
// until signed; Sign returns a read-only view so a signed claim cannot be
// altered out from under its signature.
type IdentityClaim struct {
	// Address is the subject account identifier. Must be non-empty before
	// the claim is signed.
	Address string
	Tier    Tier
	// RiskScore summarizes the KYC risk assessment, in [0,MaxRiskScore].
	RiskScore uint32
	// Expiration is the absolute time the claim stops being acceptable.
	Expiration UTCUnixTimestamp
	// Issuer identifies the signing authority. Left blank by Create, set
	// by the caller before signing. Verifiers use it to select the
	// matching public key.
	Issuer string
}

// Create builds a well-formed unsigned claim from a KYC verdict. The
// expiry is derived from the wall clock and the validity window, and the
// risk score is range checked. Issuer is left blank, callers assign it
// before signing.
func Create(address string, tier Tier, riskScore uint32, validity time.Duration) (IdentityClaim, error) {
	if riskScore > MaxRiskScore {
		return IdentityClaim{}, NewRiskScoreOutOfRangeError(riskScore)
	}
	now := time.Now()
	expiry := now.Add(validity)
	if !expiry.After(now) {
		return IdentityClaim{}, NewExpiryNotFutureError(expiry)
	}
	return IdentityClaim{
		Address:    address,
		Tier:       tier,
		RiskScore:  riskScore,
		Expiration: UTCUnixTimestamp(expiry.Unix()),
	}, nil
}
