package repositories

import (
	"errors"
	"time"

	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOtpNotFound = errors.New("otp not found")

type OtpRepository interface {
	// Replace deletes any prior record for the email and stores the new
	// one, so at most one live code exists per email.
	Replace(otp *models.EmailOtp) error
	FindByEmail(email string) (*models.EmailOtp, error)
	FindVerifiedByEmail(email string) (*models.EmailOtp, error)
	IncrementAttempts(id string) error
	MarkVerified(id string) error
	DeleteExpired(now time.Time) (int64, error)
}

type OtpRepositoryImpl struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &OtpRepositoryImpl{db: db}
}

func (r *OtpRepositoryImpl) Replace(otp *models.EmailOtp) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", otp.Email).Delete(&models.EmailOtp{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

func (r *OtpRepositoryImpl) FindByEmail(email string) (*models.EmailOtp, error) {
	var otp models.EmailOtp
	err := r.db.Where("email = ?", email).Order("created_at DESC").First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOtpNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepositoryImpl) FindVerifiedByEmail(email string) (*models.EmailOtp, error) {
	var otp models.EmailOtp
	err := r.db.Where("email = ? AND verified = ?", email, true).First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOtpNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepositoryImpl) IncrementAttempts(id string) error {
	return r.db.Model(&models.EmailOtp{}).
		Where("id = ?", id).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}

func (r *OtpRepositoryImpl) MarkVerified(id string) error {
	return r.db.Model(&models.EmailOtp{}).
		Where("id = ?", id).
		Update("verified", true).Error
}

func (r *OtpRepositoryImpl) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&models.EmailOtp{})
	return result.RowsAffected, result.Error
}
