package handlers

import (
	"net/http/httptest"
	"strings"

	"doulink_backend/internal/models"
	"doulink_backend/internal/payments"
	"doulink_backend/internal/services"
	"doulink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

// newTestRouter mounts the handler's routes under /api/v1. When userID is
// non-empty an injected middleware plays the role of the auth layer.
func newTestRouter(userID string, register func(rg *gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	if userID != "" {
		api.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
	}
	register(api)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type mockAuthService struct {
	RegisterFn   func(req services.RegisterRequest) (*services.AuthResult, error)
	LoginFn      func(email, password string) (*services.AuthResult, error)
	ParseTokenFn func(token string) (string, models.UserType, error)
}

func (m *mockAuthService) Register(req services.RegisterRequest) (*services.AuthResult, error) {
	return m.RegisterFn(req)
}
func (m *mockAuthService) Login(email, password string) (*services.AuthResult, error) {
	return m.LoginFn(email, password)
}
func (m *mockAuthService) ParseToken(token string) (string, models.UserType, error) {
	return m.ParseTokenFn(token)
}

type mockOtpService struct {
	IssueFn   func(email string) (*models.EmailOtp, error)
	VerifyFn  func(email, code string) error
	CleanupFn func() (int64, error)
}

func (m *mockOtpService) Issue(email string) (*models.EmailOtp, error) { return m.IssueFn(email) }
func (m *mockOtpService) Verify(email, code string) error              { return m.VerifyFn(email, code) }
func (m *mockOtpService) Cleanup() (int64, error)                      { return m.CleanupFn() }

type mockMatchingService struct {
	MatchDoulasForParentFn func(parentUserID string) ([]models.DoulaProfile, error)
	MatchParentsForDoulaFn func(doulaUserID string) ([]models.ParentProfile, error)
}

func (m *mockMatchingService) MatchDoulasForParent(id string) ([]models.DoulaProfile, error) {
	return m.MatchDoulasForParentFn(id)
}
func (m *mockMatchingService) MatchParentsForDoula(id string) ([]models.ParentProfile, error) {
	return m.MatchParentsForDoulaFn(id)
}

type mockSubscriptionService struct {
	CreateCheckoutFn          func(userID string, userType models.UserType, planType models.PlanType, email string) (*services.CheckoutResult, error)
	OnCheckoutCompletedFn     func(event services.CheckoutCompletedEvent) error
	OnSubscriptionCancelledFn func(providerSubscriptionID string) error
	GetStatusFn               func(userID string) (*models.Subscription, error)
	SetStatusFn               func(userID string, status models.SubscriptionStatus) error
}

func (m *mockSubscriptionService) CreateCheckout(userID string, ut models.UserType, pt models.PlanType, email string) (*services.CheckoutResult, error) {
	return m.CreateCheckoutFn(userID, ut, pt, email)
}
func (m *mockSubscriptionService) OnCheckoutCompleted(event services.CheckoutCompletedEvent) error {
	return m.OnCheckoutCompletedFn(event)
}
func (m *mockSubscriptionService) OnSubscriptionCancelled(id string) error {
	return m.OnSubscriptionCancelledFn(id)
}
func (m *mockSubscriptionService) GetStatus(userID string) (*models.Subscription, error) {
	return m.GetStatusFn(userID)
}
func (m *mockSubscriptionService) SetStatus(userID string, status models.SubscriptionStatus) error {
	return m.SetStatusFn(userID, status)
}

type mockProfileService struct {
	CreateParentProfileFn func(profile *models.ParentProfile) error
	GetParentProfileFn    func(userID string) (*models.ParentProfile, error)
	UpdateParentProfileFn func(profile *models.ParentProfile) error
	CreateDoulaProfileFn  func(profile *models.DoulaProfile) error
	GetDoulaProfileFn     func(userID string) (*models.DoulaProfile, error)
	UpdateDoulaProfileFn  func(profile *models.DoulaProfile) error
}

func (m *mockProfileService) CreateParentProfile(p *models.ParentProfile) error {
	return m.CreateParentProfileFn(p)
}
func (m *mockProfileService) GetParentProfile(id string) (*models.ParentProfile, error) {
	return m.GetParentProfileFn(id)
}
func (m *mockProfileService) UpdateParentProfile(p *models.ParentProfile) error {
	return m.UpdateParentProfileFn(p)
}
func (m *mockProfileService) CreateDoulaProfile(p *models.DoulaProfile) error {
	return m.CreateDoulaProfileFn(p)
}
func (m *mockProfileService) GetDoulaProfile(id string) (*models.DoulaProfile, error) {
	return m.GetDoulaProfileFn(id)
}
func (m *mockProfileService) UpdateDoulaProfile(p *models.DoulaProfile) error {
	return m.UpdateDoulaProfileFn(p)
}

type mockContractService struct {
	CreateFn        func(req services.CreateContractRequest) (*models.Contract, error)
	UpdateStatusFn  func(contractID string, status models.ContractStatus) error
	ListForParentFn func(parentID string) ([]models.Contract, error)
	ListForDoulaFn  func(doulaID string) ([]models.Contract, error)
}

func (m *mockContractService) Create(req services.CreateContractRequest) (*models.Contract, error) {
	return m.CreateFn(req)
}
func (m *mockContractService) UpdateStatus(id string, s models.ContractStatus) error {
	return m.UpdateStatusFn(id, s)
}
func (m *mockContractService) ListForParent(id string) ([]models.Contract, error) {
	return m.ListForParentFn(id)
}
func (m *mockContractService) ListForDoula(id string) ([]models.Contract, error) {
	return m.ListForDoulaFn(id)
}

type mockCommentService struct {
	CreateFn       func(req services.CreateCommentRequest) (*models.Comment, error)
	ListForDoulaFn func(doulaID string) ([]models.Comment, error)
}

func (m *mockCommentService) Create(req services.CreateCommentRequest) (*models.Comment, error) {
	return m.CreateFn(req)
}
func (m *mockCommentService) ListForDoula(id string) ([]models.Comment, error) {
	return m.ListForDoulaFn(id)
}

type mockProvider struct {
	VerifyWebhookFn func(payload []byte, signature string) (stripe.Event, error)
}

func (m *mockProvider) Initialize() error { return nil }
func (m *mockProvider) Ready() error      { return nil }
func (m *mockProvider) CreateCheckoutSession(params payments.CheckoutParams) (*payments.CheckoutSession, error) {
	return nil, nil
}
func (m *mockProvider) VerifyWebhook(payload []byte, sig string) (stripe.Event, error) {
	return m.VerifyWebhookFn(payload, sig)
}
