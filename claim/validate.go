package claim

import (
	"time"
)

// IsExpired reports whether the claim is expired at the given instant. The
// boundary is inclusive: a claim is already expired at the exact expiry
// second.
func IsExpired(c IdentityClaim, now time.Time) bool {
	return UTCUnixTimestamp(now.Unix()) >= c.Expiration
}

// Validate checks the business validity of a claim at the given instant.
// Checks run in a fixed order and the first failure wins: risk score
// range, expiry, empty address, empty issuer. The order is part of the
// protocol contract so error outcomes are deterministic across ports.
//
// Validate says nothing about signatures; pair it with Verify. An
// authentically issued claim can still fail here by being expired.
func Validate(c IdentityClaim, now time.Time) error {
	if c.RiskScore > MaxRiskScore {
		return NewRiskScoreOutOfRangeError(c.RiskScore)
	}
	if IsExpired(c, now) {
		return NewExpiredClaimError(c.Expiration, now)
	}
	if c.Address == "" {
		return NewEmptyAddressError()
	}
	if c.Issuer == "" {
		return NewEmptyIssuerError()
	}
	return nil
}
