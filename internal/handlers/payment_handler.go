package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"doulink_backend/internal/logger"
	"doulink_backend/internal/models"
	"doulink_backend/internal/payments"
	"doulink_backend/internal/services"
	"doulink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
)

type PaymentHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
	provider            payments.Provider
}

func NewPaymentHandler(base *BaseHandler, subscriptionService services.SubscriptionService, provider payments.Provider) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
		provider:            provider,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pay := rg.Group("/payments")
	{
		pay.POST("/create-session", h.CreateSession)
		pay.POST("/webhook", h.Webhook)
	}
}

type createSessionRequest struct {
	UserID   string `json:"userId" binding:"required" validate:"required,uuid"`
	UserType string `json:"userType" binding:"required" validate:"required,oneof=parent doula"`
	PlanType string `json:"planType" binding:"required" validate:"required,oneof=annual monthly"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
}

func (h *PaymentHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.subscriptionService.CreateCheckout(
		req.UserID,
		models.UserType(req.UserType),
		models.PlanType(req.PlanType),
		req.Email,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"sessionId":   result.SessionID,
		"checkoutUrl": result.CheckoutURL,
	})
}

// Webhook processes provider-signed payment events. Signature failures
// return 400 so the provider redelivers; permanently malformed events are
// logged and acknowledged with 200 to stop infinite redelivery; storage
// failures return 500 so the provider retries.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read webhook payload"))
		return
	}

	event, err := h.provider.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Warn("webhook signature verification failed", "error", err)
		apperrors.HandleError(c, apperrors.ErrWebhookSignature)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		h.handleCheckoutCompleted(c, event)
	case "customer.subscription.deleted":
		h.handleSubscriptionDeleted(c, event)
	default:
		logger.Debug("ignoring webhook event", "type", event.Type)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *PaymentHandler) handleCheckoutCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		logger.Error("malformed checkout.session.completed payload", "error", err)
		// Permanently malformed: acknowledge so the provider stops retrying.
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	userID := session.Metadata["user_id"]
	userType := models.UserType(session.Metadata["user_type"])
	planType := models.PlanType(session.Metadata["plan_type"])
	if userID == "" || (userType != models.UserTypeParent && userType != models.UserTypeDoula) ||
		(planType != models.PlanTypeAnnual && planType != models.PlanTypeMonthly) {
		logger.Error("checkout session missing or invalid metadata", "session_id", session.ID)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ev := services.CheckoutCompletedEvent{
		UserID:   userID,
		UserType: userType,
		PlanType: planType,
		Amount:   float64(session.AmountTotal) / 100,
	}
	if session.Customer != nil {
		ev.ProviderCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		ev.ProviderSubscriptionID = session.Subscription.ID
	}

	if err := h.subscriptionService.OnCheckoutCompleted(ev); err != nil {
		// Non-2xx triggers provider retry; the transition rolled back.
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *PaymentHandler) handleSubscriptionDeleted(c *gin.Context, event stripe.Event) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		logger.Error("malformed customer.subscription.deleted payload", "error", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.subscriptionService.OnSubscriptionCancelled(sub.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
