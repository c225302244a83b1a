package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"doulink_backend/internal/logger"
	"doulink_backend/internal/models"
	"doulink_backend/internal/pkg/email"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

type OtpService interface {
	Issue(emailAddr string) (*models.EmailOtp, error)
	Verify(emailAddr, code string) error
	Cleanup() (int64, error)
}

type otpService struct {
	otpRepo repositories.OtpRepository
	sender  email.Sender
	now     func() time.Time
}

func NewOtpService(otpRepo repositories.OtpRepository, sender email.Sender) OtpService {
	return &otpService{
		otpRepo: otpRepo,
		sender:  sender,
		now:     time.Now,
	}
}

// Issue creates a fresh code for the email, invalidating any prior one,
// and delivers it. The record is persisted before delivery: on a delivery
// failure the old code stays dead rather than silently resurrected, and
// the caller gets a 503 to retry.
func (s *otpService) Issue(emailAddr string) (*models.EmailOtp, error) {
	code, err := generateOtpCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := s.now()
	otp := &models.EmailOtp{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: now.Add(models.OtpTTL),
	}

	if err := s.otpRepo.Replace(otp); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.sender.SendOtpCode(emailAddr, code); err != nil {
		logger.Error("otp delivery failed", "email", emailAddr, "error", err)
		return nil, apperrors.ErrEmailDelivery(err)
	}

	logger.Info("otp issued", "email", emailAddr, "expires_at", otp.ExpiresAt)
	return otp, nil
}

// Verify checks a submitted code. Check order matters: terminal states
// are reported before an attempt is consumed, and the attempt counter is
// incremented even on a correct guess.
func (s *otpService) Verify(emailAddr, code string) error {
	otp, err := s.otpRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOtpNotFound) {
			return apperrors.ErrOtpNotFound
		}
		return apperrors.InternalError(err)
	}

	if otp.Verified {
		return apperrors.ErrOtpAlreadyVerified
	}
	if otp.IsExpired(s.now()) {
		return apperrors.ErrOtpExpired
	}
	if otp.AttemptsExhausted() {
		return apperrors.ErrOtpTooManyAttempts
	}

	if err := s.otpRepo.IncrementAttempts(otp.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if strings.TrimSpace(code) != otp.Code {
		return apperrors.ErrOtpInvalidCode
	}

	if err := s.otpRepo.MarkVerified(otp.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("otp verified", "email", emailAddr)
	return nil
}

// Cleanup bulk-deletes expired codes. Safe to run concurrently or on a
// schedule.
func (s *otpService) Cleanup() (int64, error) {
	deleted, err := s.otpRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return deleted, nil
}

// generateOtpCode returns a uniformly random zero-padded 6-digit code.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
