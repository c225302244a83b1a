package models

import "time"

// Subscription is the paid-access record gating feature use. One row per
// user, upserted on checkout completion and updated in place by webhook
// events; rows are never hard-deleted.
type Subscription struct {
	BaseModel
	UserID                 string             `gorm:"uniqueIndex;not null" json:"userId"`
	ProviderCustomerID     string             `json:"providerCustomerId,omitempty"`
	ProviderSubscriptionID string             `gorm:"index" json:"providerSubscriptionId,omitempty"`
	Status                 SubscriptionStatus `gorm:"type:varchar(20);not null" json:"status"`
	PlanType               PlanType           `gorm:"type:varchar(20);not null" json:"planType"`
	Amount                 float64            `json:"amount"`
	CurrentPeriodStart     *time.Time         `json:"currentPeriodStart"`
	CurrentPeriodEnd       *time.Time         `json:"currentPeriodEnd"`
}

// PeriodLength returns the subscription period for a plan type.
func (p PlanType) PeriodLength() time.Duration {
	if p == PlanTypeAnnual {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// MandatedPlan returns the single plan a user type may purchase.
func MandatedPlan(userType UserType) PlanType {
	if userType == UserTypeParent {
		return PlanTypeAnnual
	}
	return PlanTypeMonthly
}
