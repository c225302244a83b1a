package routes

import (
	"doulink_backend/internal/handlers"
	"doulink_backend/internal/middleware"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all HTTP routes under /api/v1. Authentication,
// matching and payment endpoints are public; the webhook authenticates
// itself through the provider signature.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.MatchingHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.SubscriptionHandler.RegisterRoutes(api)
	}

	protected := ginRouter.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		appHandlers.ProfileHandler.RegisterRoutes(protected)
		appHandlers.ContractHandler.RegisterRoutes(protected)
		appHandlers.CommentHandler.RegisterRoutes(protected)
	}
}
