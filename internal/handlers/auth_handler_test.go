package handlers

import (
	"net/http"
	"testing"
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"
	"doulink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(authSvc services.AuthService, otpSvc services.OtpService) *gin.Engine {
	h := NewAuthHandler(newTestBase(), authSvc, otpSvc)
	return newTestRouter("", h.RegisterRoutes)
}

func TestSendOtp_ReturnsExpiry(t *testing.T) {
	expires := time.Now().Add(10 * time.Minute)
	otpSvc := &mockOtpService{
		IssueFn: func(email string) (*models.EmailOtp, error) {
			assert.Equal(t, "parent@example.com", email)
			return &models.EmailOtp{Email: email, ExpiresAt: expires}, nil
		},
	}

	router := newAuthRouter(&mockAuthService{}, otpSvc)
	w := doJSON(router, http.MethodPost, "/api/v1/auth/send-otp", `{"email":"parent@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"expiresIn":600`)
}

func TestSendOtp_InvalidEmailRejected(t *testing.T) {
	router := newAuthRouter(&mockAuthService{}, &mockOtpService{})
	w := doJSON(router, http.MethodPost, "/api/v1/auth/send-otp", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOtp_DeliveryFailureIs503(t *testing.T) {
	otpSvc := &mockOtpService{
		IssueFn: func(email string) (*models.EmailOtp, error) {
			return nil, apperrors.ErrEmailDelivery(assert.AnError)
		},
	}

	router := newAuthRouter(&mockAuthService{}, otpSvc)
	w := doJSON(router, http.MethodPost, "/api/v1/auth/send-otp", `{"email":"parent@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVerifyOtp_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"success", nil, http.StatusOK},
		{"no code", apperrors.ErrOtpNotFound, http.StatusUnauthorized},
		{"wrong code", apperrors.ErrOtpInvalidCode, http.StatusUnauthorized},
		{"expired", apperrors.ErrOtpExpired, http.StatusUnauthorized},
		{"already verified", apperrors.ErrOtpAlreadyVerified, http.StatusUnauthorized},
		{"exhausted", apperrors.ErrOtpTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			otpSvc := &mockOtpService{
				VerifyFn: func(email, code string) error { return tc.err },
			}
			router := newAuthRouter(&mockAuthService{}, otpSvc)
			w := doJSON(router, http.MethodPost, "/api/v1/auth/verify-otp", `{"email":"parent@example.com","code":"123456"}`)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestVerifyOtp_CodeFormatValidated(t *testing.T) {
	router := newAuthRouter(&mockAuthService{}, &mockOtpService{})

	for _, code := range []string{"12345", "1234567", "abcdef"} {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/verify-otp", `{"email":"p@example.com","code":"`+code+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "code %q", code)
	}
}

func TestRegister_Created(t *testing.T) {
	authSvc := &mockAuthService{
		RegisterFn: func(req services.RegisterRequest) (*services.AuthResult, error) {
			assert.Equal(t, models.UserTypeParent, req.UserType)
			return &services.AuthResult{
				User:        &models.User{Email: req.Email, UserType: req.UserType},
				AccessToken: "token-123",
			}, nil
		},
	}

	router := newAuthRouter(authSvc, &mockOtpService{})
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@example.com","password":"password123","userType":"parent"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "token-123")
}

func TestRegister_UnverifiedEmailIs403(t *testing.T) {
	authSvc := &mockAuthService{
		RegisterFn: func(req services.RegisterRequest) (*services.AuthResult, error) {
			return nil, apperrors.ErrEmailNotVerified
		},
	}

	router := newAuthRouter(authSvc, &mockOtpService{})
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@example.com","password":"password123","userType":"doula"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_RejectsShortPasswordAndBadUserType(t *testing.T) {
	router := newAuthRouter(&mockAuthService{}, &mockOtpService{})

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@example.com","password":"short","userType":"parent"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"new@example.com","password":"password123","userType":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentialsIs401(t *testing.T) {
	authSvc := &mockAuthService{
		LoginFn: func(email, password string) (*services.AuthResult, error) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
		},
	}

	router := newAuthRouter(authSvc, &mockOtpService{})
	w := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"u@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCleanupOtps(t *testing.T) {
	otpSvc := &mockOtpService{
		CleanupFn: func() (int64, error) { return 7, nil },
	}

	router := newAuthRouter(&mockAuthService{}, otpSvc)
	w := doJSON(router, http.MethodDelete, "/api/v1/auth/cleanup-otps", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":7`)
}
