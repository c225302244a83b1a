package payments

import (
	"errors"
	"fmt"

	"doulink_backend/internal/models"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrNotInitialized = errors.New("payment provider is not initialized")

// CheckoutParams describes a checkout session request for one user.
type CheckoutParams struct {
	UserID   string
	UserType models.UserType
	PlanType models.PlanType
	Email    string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Provider is the payment integration seen by services and handlers.
// It is constructed once at process start and injected; there is no
// package-level client state.
type Provider interface {
	Initialize() error
	Ready() error
	CreateCheckoutSession(params CheckoutParams) (*CheckoutSession, error)
	VerifyWebhook(payload []byte, signature string) (stripe.Event, error)
}

type Config struct {
	SecretKey      string
	WebhookSecret  string
	AnnualPriceID  string
	MonthlyPriceID string
	SuccessURL     string
	CancelURL      string
}

type StripeProvider struct {
	config      Config
	initialized bool
}

func NewStripeProvider(config Config) *StripeProvider {
	return &StripeProvider{config: config}
}

func (p *StripeProvider) Initialize() error {
	if p.config.SecretKey == "" || p.config.WebhookSecret == "" {
		return fmt.Errorf("stripe: missing secret key or webhook secret")
	}
	if p.config.AnnualPriceID == "" || p.config.MonthlyPriceID == "" {
		return fmt.Errorf("stripe: missing price ids")
	}

	stripe.Key = p.config.SecretKey
	p.initialized = true
	return nil
}

func (p *StripeProvider) Ready() error {
	if !p.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (p *StripeProvider) priceID(planType models.PlanType) string {
	if planType == models.PlanTypeAnnual {
		return p.config.AnnualPriceID
	}
	return p.config.MonthlyPriceID
}

func (p *StripeProvider) CreateCheckoutSession(params CheckoutParams) (*CheckoutSession, error) {
	if err := p.Ready(); err != nil {
		return nil, err
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(params.Email),
		SuccessURL:    stripe.String(p.config.SuccessURL),
		CancelURL:     stripe.String(p.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.priceID(params.PlanType)),
				Quantity: stripe.Int64(1),
			},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id":   params.UserID,
				"user_type": string(params.UserType),
				"plan_type": string(params.PlanType),
			},
		},
	}
	sessionParams.AddMetadata("user_id", params.UserID)
	sessionParams.AddMetadata("user_type", string(params.UserType))
	sessionParams.AddMetadata("plan_type", string(params.PlanType))

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// VerifyWebhook checks the provider signature and returns the parsed
// event. A signature failure must surface as a 4xx so the provider
// retries delivery.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	if err := p.Ready(); err != nil {
		return stripe.Event{}, err
	}
	return webhook.ConstructEvent(payload, signature, p.config.WebhookSecret)
}
