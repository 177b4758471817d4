package service

import "time"

// Outcome labels for signup and signin attempts.
const (
	OutcomeSuccess            = "success"
	OutcomeDuplicateEmail     = "duplicate_email"
	OutcomeUserNotFound       = "user_not_found"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// KDF operation labels.
const (
	KDFOpHash   = "hash"
	KDFOpVerify = "verify"
)

// AuthMetrics records credential flow outcomes.
type AuthMetrics interface {
	RecordSignup(outcome string)
	RecordSignin(outcome string)
	ObserveKDF(op string, d time.Duration)
}
