package handlers

import (
	"net/http"
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.POST("/parent", h.CreateParentProfile)
		profiles.GET("/parent/:userId", h.GetParentProfile)
		profiles.PUT("/parent", h.UpdateParentProfile)

		profiles.POST("/doula", h.CreateDoulaProfile)
		profiles.GET("/doula/:userId", h.GetDoulaProfile)
		profiles.PUT("/doula", h.UpdateDoulaProfile)
	}
}

type parentProfileRequest struct {
	Name               string   `json:"name" binding:"required" validate:"required"`
	State              string   `json:"state" binding:"required" validate:"required"`
	Town               string   `json:"town"`
	ZipCode            string   `json:"zipCode" validate:"omitempty,zipcode"`
	ServiceCategories  []string `json:"serviceCategories" validate:"required,min=1,dive,oneof=birth postpartum"`
	FinancingType      []string `json:"financingType" validate:"required,min=1,dive,oneof=self carrot medicaid"`
	PreferredLanguages []string `json:"preferredLanguages"`
	DesiredDays        []string `json:"desiredDays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ServiceStart       *time.Time `json:"serviceStart"`
	ServiceEnd         *time.Time `json:"serviceEnd"`
	DesiredTimeStart   *string  `json:"desiredTimeStart"`
	DesiredTimeEnd     *string  `json:"desiredTimeEnd"`
	AcceptedTerms      bool     `json:"acceptedTerms"`
}

func (r *parentProfileRequest) toModel(userID string) *models.ParentProfile {
	profile := &models.ParentProfile{
		UserID:           userID,
		Name:             r.Name,
		State:            r.State,
		Town:             r.Town,
		ZipCode:          r.ZipCode,
		ServiceStart:     r.ServiceStart,
		ServiceEnd:       r.ServiceEnd,
		DesiredTimeStart: r.DesiredTimeStart,
		DesiredTimeEnd:   r.DesiredTimeEnd,
		AcceptedTerms:    r.AcceptedTerms,
	}
	profile.SetServiceCategories(r.ServiceCategories)
	profile.SetFinancingType(r.FinancingType)
	profile.SetPreferredLanguages(r.PreferredLanguages)
	profile.SetDesiredDays(r.DesiredDays)
	return profile
}

func (h *ProfileHandler) CreateParentProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req parentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile := req.toModel(userID)
	if err := h.profileService.CreateParentProfile(profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) GetParentProfile(c *gin.Context) {
	profile, err := h.profileService.GetParentProfile(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateParentProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req parentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile := req.toModel(userID)
	if err := h.profileService.UpdateParentProfile(profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type doulaProfileRequest struct {
	Name               string           `json:"name" binding:"required" validate:"required"`
	State              string           `json:"state" binding:"required" validate:"required"`
	Town               string           `json:"town"`
	ZipCode            string           `json:"zipCode" validate:"omitempty,zipcode"`
	PaymentPreferences []string         `json:"paymentPreferences" validate:"required,min=1,dive,oneof=self carrot medicaid"`
	ServiceCategories  []string         `json:"serviceCategories" validate:"required,min=1,dive,oneof=birth postpartum"`
	SpokenLanguages    []string         `json:"spokenLanguages"`
	Certifications     []string         `json:"certifications"`
	CertificationDocs  []string         `json:"certificationDocs" validate:"max=7"`
	Referees           []models.Referee `json:"referees" validate:"max=3,dive"`
	DriveDistance      int              `json:"driveDistance" validate:"required,min=1,max=70"`
	HourlyRateMin      float64          `json:"hourlyRateMin" validate:"min=0"`
	HourlyRateMax      float64          `json:"hourlyRateMax" validate:"min=0"`
	ProfilePicture     string           `json:"profilePicture"`
	AcceptedTerms      bool             `json:"acceptedTerms"`
}

func (r *doulaProfileRequest) toModel(userID string) *models.DoulaProfile {
	profile := &models.DoulaProfile{
		UserID:         userID,
		Name:           r.Name,
		State:          r.State,
		Town:           r.Town,
		ZipCode:        r.ZipCode,
		DriveDistance:  r.DriveDistance,
		HourlyRateMin:  r.HourlyRateMin,
		HourlyRateMax:  r.HourlyRateMax,
		ProfilePicture: r.ProfilePicture,
		AcceptedTerms:  r.AcceptedTerms,
	}
	profile.SetPaymentPreferences(r.PaymentPreferences)
	profile.SetServiceCategories(r.ServiceCategories)
	profile.SetSpokenLanguages(r.SpokenLanguages)
	profile.SetCertifications(r.Certifications)
	profile.SetCertificationDocs(r.CertificationDocs)
	profile.SetReferees(r.Referees)
	return profile
}

func (h *ProfileHandler) CreateDoulaProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req doulaProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile := req.toModel(userID)
	if err := h.profileService.CreateDoulaProfile(profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) GetDoulaProfile(c *gin.Context) {
	profile, err := h.profileService.GetDoulaProfile(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateDoulaProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req doulaProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile := req.toModel(userID)
	if err := h.profileService.UpdateDoulaProfile(profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
