package claim

import (
	"errors"
	"fmt"
	"time"

	"github.com/kycgate/go-idclaim/core/failure"
	"github.com/kycgate/go-idclaim/did"
)

// ValidationError is a business rule violation: a claim field is out of
// its domain or the claim is not in a signable state. Unexported marker
// method limits satisfying types to this package.
type ValidationError interface {
	error
	failure.Named
	isValidationError()
}

// CryptoError is a signing or verification failure. Deliberately distinct
// from ValidationError and ExpiredClaimError: "authentically issued but
// now expired" is a different outcome from "never validly issued".
type CryptoError interface {
	error
	failure.Named
	isCryptoError()
}

type RiskScoreOutOfRangeError struct {
	failure.NamedWithStackTrace
	score uint32
}

func NewRiskScoreOutOfRangeError(score uint32) RiskScoreOutOfRangeError {
	return RiskScoreOutOfRangeError{failure.NamedWithCurrentStackTrace("RiskScoreOutOfRange"), score}
}

func (e RiskScoreOutOfRangeError) Score() uint32 {
	return e.score
}

func (e RiskScoreOutOfRangeError) Error() string {
	return fmt.Sprintf("risk score %d out of range [0,%d]", e.score, MaxRiskScore)
}

func (e RiskScoreOutOfRangeError) isValidationError() {}

type ExpiryNotFutureError struct {
	failure.NamedWithStackTrace
	expiry time.Time
}

func NewExpiryNotFutureError(expiry time.Time) ExpiryNotFutureError {
	return ExpiryNotFutureError{failure.NamedWithCurrentStackTrace("ExpiryNotFuture"), expiry}
}

func (e ExpiryNotFutureError) Expiry() time.Time {
	return e.expiry
}

func (e ExpiryNotFutureError) Error() string {
	return fmt.Sprintf("expiry %s is not in the future", e.expiry.UTC().Format(time.RFC3339))
}

func (e ExpiryNotFutureError) isValidationError() {}

type EmptyAddressError struct {
	failure.NamedWithStackTrace
}

func NewEmptyAddressError() EmptyAddressError {
	return EmptyAddressError{failure.NamedWithCurrentStackTrace("EmptyAddress")}
}

func (e EmptyAddressError) Error() string {
	return "claim address is empty"
}

func (e EmptyAddressError) isValidationError() {}

type EmptyIssuerError struct {
	failure.NamedWithStackTrace
}

func NewEmptyIssuerError() EmptyIssuerError {
	return EmptyIssuerError{failure.NamedWithCurrentStackTrace("EmptyIssuer")}
}

func (e EmptyIssuerError) Error() string {
	return "claim issuer is empty"
}

func (e EmptyIssuerError) isValidationError() {}

// ExpiredClaimError is raised by Validate for a claim whose expiry has
// passed. It is business-level: the signature over the claim may still be
// perfectly valid.
type ExpiredClaimError struct {
	failure.NamedWithStackTrace
	expiration UTCUnixTimestamp
	now        time.Time
}

func NewExpiredClaimError(expiration UTCUnixTimestamp, now time.Time) ExpiredClaimError {
	return ExpiredClaimError{failure.NamedWithCurrentStackTrace("ExpiredClaim"), expiration, now}
}

func (e ExpiredClaimError) Expiration() UTCUnixTimestamp {
	return e.expiration
}

func (e ExpiredClaimError) Error() string {
	return fmt.Sprintf("claim expired at %d (now %d)", e.expiration, e.now.Unix())
}

type InvalidSignatureError struct {
	failure.NamedWithStackTrace
	issuer   string
	verifier did.DID
}

func NewInvalidSignatureError(issuer string, verifier did.DID) InvalidSignatureError {
	return InvalidSignatureError{failure.NamedWithCurrentStackTrace("InvalidSignature"), issuer, verifier}
}

func (e InvalidSignatureError) Issuer() string {
	return e.issuer
}

func (e InvalidSignatureError) Error() string {
	if e.issuer == "" {
		return fmt.Sprintf("claim does not have a valid signature from %s", e.verifier)
	}
	return fmt.Sprintf("claim issued by %s does not have a valid signature from %s", e.issuer, e.verifier)
}

func (e InvalidSignatureError) isCryptoError() {}

// UnsupportedSignatureAlgorithmError is raised when a signature envelope
// carries an algorithm tag this protocol does not support. Distinct from
// InvalidSignatureError: the signature was never checked at all.
type UnsupportedSignatureAlgorithmError struct {
	failure.NamedWithStackTrace
	code uint64
}

func NewUnsupportedSignatureAlgorithmError(code uint64) UnsupportedSignatureAlgorithmError {
	return UnsupportedSignatureAlgorithmError{failure.NamedWithCurrentStackTrace("UnsupportedSignatureAlgorithm"), code}
}

func (e UnsupportedSignatureAlgorithmError) Code() uint64 {
	return e.code
}

func (e UnsupportedSignatureAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported signature algorithm: 0x%x", e.code)
}

func (e UnsupportedSignatureAlgorithmError) isCryptoError() {}

// IsValidation reports whether err is a business rule violation.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// IsCrypto reports whether err is a signing or verification failure.
func IsCrypto(err error) bool {
	var c CryptoError
	return errors.As(err, &c)
}

// IsExpiredClaim reports whether err is an expired claim error.
func IsExpiredClaim(err error) bool {
	var e ExpiredClaimError
	return errors.As(err, &e)
}
