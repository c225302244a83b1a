package handlers

import (
	"net/http"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	{
		subs.GET("/:userId", h.GetStatus)
		subs.PUT("/:userId", h.SetStatus)
	}
}

func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	sub, err := h.subscriptionService.GetStatus(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=active cancelled expired"`
}

// SetStatus is the administrative override; it does not touch the
// profile's subscription flag.
func (h *SubscriptionHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.subscriptionService.SetStatus(c.Param("userId"), models.SubscriptionStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription status updated",
	})
}
