package models

type UserType string
type ContractStatus string
type SubscriptionStatus string
type PlanType string

const (
	UserTypeParent UserType = "parent"
	UserTypeDoula  UserType = "doula"

	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"

	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"

	PlanTypeAnnual  PlanType = "annual"
	PlanTypeMonthly PlanType = "monthly"
)

// Service categories offered/requested on profiles.
const (
	ServiceCategoryBirth      = "birth"
	ServiceCategoryPostpartum = "postpartum"
)

// Financing options on parent profiles / payment preferences on doula profiles.
const (
	FinancingSelf     = "self"
	FinancingCarrot   = "carrot"
	FinancingMedicaid = "medicaid"
)

// IsValidContractTransition reports whether a contract may move from one
// status to another. Transitions are one-directional: terminal states
// (completed, cancelled) never revert.
func IsValidContractTransition(from, to ContractStatus) bool {
	if from != ContractStatusActive {
		return false
	}
	return to == ContractStatusCompleted || to == ContractStatusCancelled
}
