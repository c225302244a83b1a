package services

import (
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/payments"

	"github.com/stripe/stripe-go/v82"
)

// Hand-rolled function-field mocks. Tests set only the calls they expect;
// an unset call panics, which surfaces unexpected repository access.

type mockUserRepo struct {
	CreateFn      func(user *models.User) error
	FindByIDFn    func(id string) (*models.User, error)
	FindByEmailFn func(email string) (*models.User, error)
	EmailExistsFn func(email string) (bool, error)
}

func (m *mockUserRepo) Create(user *models.User) error              { return m.CreateFn(user) }
func (m *mockUserRepo) FindByID(id string) (*models.User, error)    { return m.FindByIDFn(id) }
func (m *mockUserRepo) FindByEmail(e string) (*models.User, error)  { return m.FindByEmailFn(e) }
func (m *mockUserRepo) EmailExists(e string) (bool, error)          { return m.EmailExistsFn(e) }

type mockProfileRepo struct {
	CreateParentProfileFn          func(profile *models.ParentProfile) error
	FindParentProfileByUserIDFn    func(userID string) (*models.ParentProfile, error)
	UpdateParentProfileFn          func(profile *models.ParentProfile) error
	FindSubscribedParentProfilesFn func() ([]models.ParentProfile, error)
	CreateDoulaProfileFn           func(profile *models.DoulaProfile) error
	FindDoulaProfileByUserIDFn     func(userID string) (*models.DoulaProfile, error)
	UpdateDoulaProfileFn           func(profile *models.DoulaProfile) error
	FindSubscribedDoulaProfilesFn  func() ([]models.DoulaProfile, error)
	UpdateDoulaRatingFn            func(userID string, rating float64, reviewCount int) error
}

func (m *mockProfileRepo) CreateParentProfile(p *models.ParentProfile) error {
	return m.CreateParentProfileFn(p)
}
func (m *mockProfileRepo) FindParentProfileByUserID(id string) (*models.ParentProfile, error) {
	return m.FindParentProfileByUserIDFn(id)
}
func (m *mockProfileRepo) UpdateParentProfile(p *models.ParentProfile) error {
	return m.UpdateParentProfileFn(p)
}
func (m *mockProfileRepo) FindSubscribedParentProfiles() ([]models.ParentProfile, error) {
	return m.FindSubscribedParentProfilesFn()
}
func (m *mockProfileRepo) CreateDoulaProfile(p *models.DoulaProfile) error {
	return m.CreateDoulaProfileFn(p)
}
func (m *mockProfileRepo) FindDoulaProfileByUserID(id string) (*models.DoulaProfile, error) {
	return m.FindDoulaProfileByUserIDFn(id)
}
func (m *mockProfileRepo) UpdateDoulaProfile(p *models.DoulaProfile) error {
	return m.UpdateDoulaProfileFn(p)
}
func (m *mockProfileRepo) FindSubscribedDoulaProfiles() ([]models.DoulaProfile, error) {
	return m.FindSubscribedDoulaProfilesFn()
}
func (m *mockProfileRepo) UpdateDoulaRating(id string, rating float64, count int) error {
	return m.UpdateDoulaRatingFn(id, rating, count)
}

type mockOtpRepo struct {
	ReplaceFn             func(otp *models.EmailOtp) error
	FindByEmailFn         func(email string) (*models.EmailOtp, error)
	FindVerifiedByEmailFn func(email string) (*models.EmailOtp, error)
	IncrementAttemptsFn   func(id string) error
	MarkVerifiedFn        func(id string) error
	DeleteExpiredFn       func(now time.Time) (int64, error)
}

func (m *mockOtpRepo) Replace(otp *models.EmailOtp) error { return m.ReplaceFn(otp) }
func (m *mockOtpRepo) FindByEmail(e string) (*models.EmailOtp, error) {
	return m.FindByEmailFn(e)
}
func (m *mockOtpRepo) FindVerifiedByEmail(e string) (*models.EmailOtp, error) {
	return m.FindVerifiedByEmailFn(e)
}
func (m *mockOtpRepo) IncrementAttempts(id string) error { return m.IncrementAttemptsFn(id) }
func (m *mockOtpRepo) MarkVerified(id string) error      { return m.MarkVerifiedFn(id) }
func (m *mockOtpRepo) DeleteExpired(now time.Time) (int64, error) {
	return m.DeleteExpiredFn(now)
}

type mockSubscriptionRepo struct {
	FindByUserIDFn                 func(userID string) (*models.Subscription, error)
	FindByProviderSubscriptionIDFn func(providerSubID string) (*models.Subscription, error)
	UpdateStatusFn                 func(userID string, status models.SubscriptionStatus) error
	ActivateWithProfileFlagFn      func(sub *models.Subscription, userType models.UserType) error
	CancelWithProfileFlagFn        func(sub *models.Subscription, userType models.UserType) error
	ExpireOverdueFn                func() (int64, error)
}

func (m *mockSubscriptionRepo) FindByUserID(id string) (*models.Subscription, error) {
	return m.FindByUserIDFn(id)
}
func (m *mockSubscriptionRepo) FindByProviderSubscriptionID(id string) (*models.Subscription, error) {
	return m.FindByProviderSubscriptionIDFn(id)
}
func (m *mockSubscriptionRepo) UpdateStatus(id string, status models.SubscriptionStatus) error {
	return m.UpdateStatusFn(id, status)
}
func (m *mockSubscriptionRepo) ActivateWithProfileFlag(sub *models.Subscription, ut models.UserType) error {
	return m.ActivateWithProfileFlagFn(sub, ut)
}
func (m *mockSubscriptionRepo) CancelWithProfileFlag(sub *models.Subscription, ut models.UserType) error {
	return m.CancelWithProfileFlagFn(sub, ut)
}
func (m *mockSubscriptionRepo) ExpireOverdue() (int64, error) { return m.ExpireOverdueFn() }

type mockContractRepo struct {
	CreateFn       func(contract *models.Contract) error
	FindByIDFn     func(id string) (*models.Contract, error)
	UpdateStatusFn func(id string, status models.ContractStatus) error
	FindByParentFn func(parentID string) ([]models.Contract, error)
	FindByDoulaFn  func(doulaID string) ([]models.Contract, error)
}

func (m *mockContractRepo) Create(c *models.Contract) error           { return m.CreateFn(c) }
func (m *mockContractRepo) FindByID(id string) (*models.Contract, error) {
	return m.FindByIDFn(id)
}
func (m *mockContractRepo) UpdateStatus(id string, s models.ContractStatus) error {
	return m.UpdateStatusFn(id, s)
}
func (m *mockContractRepo) FindByParent(id string) ([]models.Contract, error) {
	return m.FindByParentFn(id)
}
func (m *mockContractRepo) FindByDoula(id string) ([]models.Contract, error) {
	return m.FindByDoulaFn(id)
}

type mockCommentRepo struct {
	ExistsForContractAndParentFn func(contractID, parentID string) (bool, error)
	FindByDoulaFn                func(doulaID string) ([]models.Comment, error)
	CreateWithRatingRecalcFn     func(comment *models.Comment) error
}

func (m *mockCommentRepo) ExistsForContractAndParent(cID, pID string) (bool, error) {
	return m.ExistsForContractAndParentFn(cID, pID)
}
func (m *mockCommentRepo) FindByDoula(id string) ([]models.Comment, error) {
	return m.FindByDoulaFn(id)
}
func (m *mockCommentRepo) CreateWithRatingRecalc(c *models.Comment) error {
	return m.CreateWithRatingRecalcFn(c)
}

type mockSender struct {
	SendOtpCodeFn func(to, code string) error
}

func (m *mockSender) SendOtpCode(to, code string) error { return m.SendOtpCodeFn(to, code) }
func (m *mockSender) Validate() error                   { return nil }

type mockPaymentProvider struct {
	ReadyFn                 func() error
	CreateCheckoutSessionFn func(params payments.CheckoutParams) (*payments.CheckoutSession, error)
	VerifyWebhookFn         func(payload []byte, signature string) (stripe.Event, error)
}

func (m *mockPaymentProvider) Initialize() error { return nil }
func (m *mockPaymentProvider) Ready() error {
	if m.ReadyFn != nil {
		return m.ReadyFn()
	}
	return nil
}
func (m *mockPaymentProvider) CreateCheckoutSession(p payments.CheckoutParams) (*payments.CheckoutSession, error) {
	return m.CreateCheckoutSessionFn(p)
}
func (m *mockPaymentProvider) VerifyWebhook(payload []byte, sig string) (stripe.Event, error) {
	return m.VerifyWebhookFn(payload, sig)
}
