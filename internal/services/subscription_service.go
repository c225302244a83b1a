package services

import (
	"time"

	"doulink_backend/internal/logger"
	"doulink_backend/internal/models"
	"doulink_backend/internal/payments"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

// CheckoutCompletedEvent is the domain view of a provider
// checkout.session.completed delivery.
type CheckoutCompletedEvent struct {
	UserID                 string
	UserType               models.UserType
	PlanType               models.PlanType
	ProviderCustomerID     string
	ProviderSubscriptionID string
	Amount                 float64
}

type CheckoutResult struct {
	SessionID   string
	CheckoutURL string
}

type SubscriptionService interface {
	CreateCheckout(userID string, userType models.UserType, planType models.PlanType, email string) (*CheckoutResult, error)
	OnCheckoutCompleted(event CheckoutCompletedEvent) error
	OnSubscriptionCancelled(providerSubscriptionID string) error
	GetStatus(userID string) (*models.Subscription, error)
	SetStatus(userID string, status models.SubscriptionStatus) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	provider         payments.Provider
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	provider payments.Provider,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		provider:         provider,
		now:              time.Now,
	}
}

// CreateCheckout validates the plan against the mandated plan for the
// user type and asks the provider for a checkout reference. No local
// subscription state is written; the webhook confirms the purchase.
func (s *subscriptionService) CreateCheckout(userID string, userType models.UserType, planType models.PlanType, emailAddr string) (*CheckoutResult, error) {
	if planType != models.MandatedPlan(userType) {
		return nil, apperrors.ErrInvalidPlan
	}

	if err := s.provider.Ready(); err != nil {
		return nil, apperrors.ErrPaymentProvider(err)
	}

	session, err := s.provider.CreateCheckoutSession(payments.CheckoutParams{
		UserID:   userID,
		UserType: userType,
		PlanType: planType,
		Email:    emailAddr,
	})
	if err != nil {
		return nil, apperrors.ErrPaymentProvider(err)
	}

	logger.Info("checkout session created", "user_id", userID, "plan", planType, "session_id", session.ID)
	return &CheckoutResult{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// OnCheckoutCompleted applies a confirmed purchase: upsert by userId,
// status ACTIVE, fresh period bounds, and the owning profile's
// subscription flag — atomically. Re-delivery of the same event settles
// on the same state.
func (s *subscriptionService) OnCheckoutCompleted(event CheckoutCompletedEvent) error {
	now := s.now()
	periodEnd := now.Add(event.PlanType.PeriodLength())

	sub := &models.Subscription{
		UserID:                 event.UserID,
		ProviderCustomerID:     event.ProviderCustomerID,
		ProviderSubscriptionID: event.ProviderSubscriptionID,
		Status:                 models.SubscriptionStatusActive,
		PlanType:               event.PlanType,
		Amount:                 event.Amount,
		CurrentPeriodStart:     &now,
		CurrentPeriodEnd:       &periodEnd,
	}

	if err := s.subscriptionRepo.ActivateWithProfileFlag(sub, event.UserType); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("subscription activated",
		"user_id", event.UserID,
		"plan", event.PlanType,
		"period_end", periodEnd,
	)
	return nil
}

// OnSubscriptionCancelled handles a provider cancellation event. An
// unknown provider subscription id is a logged no-op, not an error: the
// event may reference a subscription this system never tracked.
func (s *subscriptionService) OnSubscriptionCancelled(providerSubscriptionID string) error {
	sub, err := s.subscriptionRepo.FindByProviderSubscriptionID(providerSubscriptionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			logger.Warn("cancellation event for untracked subscription", "provider_subscription_id", providerSubscriptionID)
			return nil
		}
		return apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(sub.UserID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.subscriptionRepo.CancelWithProfileFlag(sub, user.UserType); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("subscription cancelled", "user_id", sub.UserID, "provider_subscription_id", providerSubscriptionID)
	return nil
}

func (s *subscriptionService) GetStatus(userID string) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return sub, nil
}

// SetStatus is the administrative override. Unlike the webhook path it
// does not touch the profile's subscription flag; the two paths are
// intentionally asymmetric and the gap is documented rather than fixed.
func (s *subscriptionService) SetStatus(userID string, status models.SubscriptionStatus) error {
	err := s.subscriptionRepo.UpdateStatus(userID, status)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrSubscriptionNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("subscription status overridden", "user_id", userID, "status", status)
	return nil
}
