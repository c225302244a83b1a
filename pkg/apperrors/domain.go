package apperrors

import "net/http"

// Predefined errors for the marketplace domain. Services return these
// directly; handlers only translate them through HandleError.

// --- OTP ---

var ErrOtpNotFound = New(
	CodeNotFound,
	"otp",
	"No verification code found for this email",
	http.StatusUnauthorized,
)

var ErrOtpAlreadyVerified = New(
	CodeInvalidOperation,
	"otp",
	"Verification code has already been used",
	http.StatusUnauthorized,
)

var ErrOtpExpired = New(
	CodeTokenExpired,
	"otp",
	"Verification code has expired",
	http.StatusUnauthorized,
)

var ErrOtpTooManyAttempts = New(
	CodeRateLimited,
	"otp",
	"Too many verification attempts, request a new code",
	http.StatusTooManyRequests,
)

var ErrOtpInvalidCode = New(
	CodeInvalidCredentials,
	"otp",
	"Invalid verification code",
	http.StatusUnauthorized,
)

// ErrEmailDelivery wraps an outbound email failure (503 so the client retries).
func ErrEmailDelivery(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to deliver verification code", http.StatusServiceUnavailable)
}

// --- Subscriptions & payments ---

// ErrInvalidPlan is returned when the requested plan does not match the
// mandated plan for the user type (parents: annual, doulas: monthly).
var ErrInvalidPlan = New(
	CodeInvalidOperation,
	"subscription",
	"Plan type is not available for this user type",
	http.StatusBadRequest,
)

var ErrSubscriptionNotFound = New(
	CodeNotFound,
	"subscription",
	"No subscription found for this user",
	http.StatusNotFound,
)

func ErrPaymentProvider(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payment", "Payment provider unavailable", http.StatusServiceUnavailable)
}

var ErrWebhookSignature = New(
	CodeValidationFailed,
	"payment",
	"Webhook signature verification failed",
	http.StatusBadRequest,
)

// --- Contracts & reviews ---

var ErrContractNotCompleted = New(
	CodeInvalidStatus,
	"review",
	"Reviews can only be left on completed contracts",
	http.StatusBadRequest,
)

var ErrDuplicateReview = New(
	CodeConflict,
	"review",
	"A review for this contract already exists",
	http.StatusConflict,
)

var ErrContractStatusFinal = New(
	CodeInvalidStatus,
	"contract",
	"Contract status can no longer be changed",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrTermsNotAccepted = New(
	CodeInvalidOperation,
	"profile",
	"Terms of service must be accepted",
	http.StatusBadRequest,
)

var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Email address has not been verified",
	http.StatusForbidden,
)
