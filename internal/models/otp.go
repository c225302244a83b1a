package models

import "time"

const (
	// OtpTTL is how long an issued code stays valid.
	OtpTTL = 10 * time.Minute
	// OtpMaxAttempts is the number of verify attempts before a code is exhausted.
	OtpMaxAttempts = 5
)

// EmailOtp is a short-lived one-time code proving email ownership.
// At most one live record per email: issuing a new code deletes the old one.
type EmailOtp struct {
	BaseModel
	Email        string    `gorm:"not null;index" json:"email"`
	Code         string    `gorm:"type:varchar(6);not null" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expiresAt"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	AttemptCount int       `gorm:"default:0" json:"attemptCount"`
}

func (o *EmailOtp) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

func (o *EmailOtp) AttemptsExhausted() bool {
	return o.AttemptCount >= OtpMaxAttempts
}
