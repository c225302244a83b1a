package handlers

import (
	"net/http"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	otpService  services.OtpService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, otpService services.OtpService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		otpService:  otpService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOtp)
		auth.POST("/verify-otp", h.VerifyOtp)
		auth.DELETE("/cleanup-otps", h.CleanupOtps)
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

type sendOtpRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

func (h *AuthHandler) SendOtp(c *gin.Context) {
	var req sendOtpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	otp, err := h.otpService.Issue(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Verification code sent",
		"expiresIn": int(models.OtpTTL.Seconds()),
		"expiresAt": otp.ExpiresAt,
	})
}

type verifyOtpRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Code  string `json:"code" binding:"required" validate:"required,otpcode"`
}

func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req verifyOtpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.otpService.Verify(req.Email, req.Code); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified",
	})
}

func (h *AuthHandler) CleanupOtps(c *gin.Context) {
	deleted, err := h.otpService.Cleanup()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expired codes removed",
		"deleted": deleted,
	})
}

type registerRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
	UserType string `json:"userType" binding:"required" validate:"required,oneof=parent doula"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(services.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		UserType: models.UserType(req.UserType),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}
