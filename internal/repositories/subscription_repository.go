package repositories

import (
	"errors"

	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	FindByUserID(userID string) (*models.Subscription, error)
	FindByProviderSubscriptionID(providerSubID string) (*models.Subscription, error)
	UpdateStatus(userID string, status models.SubscriptionStatus) error

	// ActivateWithProfileFlag upserts the subscription row by userId and
	// flips the owning profile's subscription flag to true in one
	// transaction. Re-applying the same activation is a no-op in effect.
	ActivateWithProfileFlag(sub *models.Subscription, userType models.UserType) error

	// CancelWithProfileFlag sets the subscription cancelled and the owning
	// profile's subscription flag to false in one transaction.
	CancelWithProfileFlag(sub *models.Subscription, userType models.UserType) error

	// ExpireOverdue marks past-period active subscriptions expired and
	// clears the owning profile flags. Returns the number of rows expired.
	ExpireOverdue() (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByProviderSubscriptionID(providerSubID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("provider_subscription_id = ?", providerSubID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// UpdateStatus is the administrative override path. It deliberately does
// not touch the profile flag; webhook-driven transitions do.
func (r *SubscriptionRepositoryImpl) UpdateStatus(userID string, status models.SubscriptionStatus) error {
	result := r.db.Model(&models.Subscription{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) ActivateWithProfileFlag(sub *models.Subscription, userType models.UserType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Subscription
		err := tx.Where("user_id = ?", sub.UserID).First(&existing).Error
		switch {
		case err == nil:
			// Upsert keyed on user_id: re-delivered events and renewal
			// cycles update the same row.
			updates := map[string]interface{}{
				"provider_customer_id":     sub.ProviderCustomerID,
				"provider_subscription_id": sub.ProviderSubscriptionID,
				"status":                   sub.Status,
				"plan_type":                sub.PlanType,
				"amount":                   sub.Amount,
				"current_period_start":     sub.CurrentPeriodStart,
				"current_period_end":       sub.CurrentPeriodEnd,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			sub.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(sub).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return setSubscriptionFlag(tx, userType, sub.UserID, true)
	})
}

func (r *SubscriptionRepositoryImpl) CancelWithProfileFlag(sub *models.Subscription, userType models.UserType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Subscription{}).
			Where("id = ?", sub.ID).
			Update("status", models.SubscriptionStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSubscriptionNotFound
		}

		return setSubscriptionFlag(tx, userType, sub.UserID, false)
	})
}

func (r *SubscriptionRepositoryImpl) ExpireOverdue() (int64, error) {
	var expired int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var overdue []models.Subscription
		if err := tx.Where("status = ? AND current_period_end < NOW()", models.SubscriptionStatusActive).
			Find(&overdue).Error; err != nil {
			return err
		}

		for i := range overdue {
			sub := &overdue[i]
			if err := tx.Model(sub).Update("status", models.SubscriptionStatusExpired).Error; err != nil {
				return err
			}

			var user models.User
			if err := tx.First(&user, "id = ?", sub.UserID).Error; err != nil {
				return err
			}
			if err := setSubscriptionFlag(tx, user.UserType, sub.UserID, false); err != nil {
				return err
			}
			expired++
		}
		return nil
	})
	return expired, err
}
