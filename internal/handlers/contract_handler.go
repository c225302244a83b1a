package handlers

import (
	"net/http"
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	*BaseHandler
	contractService services.ContractService
}

func NewContractHandler(base *BaseHandler, contractService services.ContractService) *ContractHandler {
	return &ContractHandler{
		BaseHandler:     base,
		contractService: contractService,
	}
}

func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.Create)
		contracts.PUT("/:contractId/status", h.UpdateStatus)
		contracts.GET("/parent/:userId", h.ListForParent)
		contracts.GET("/doula/:userId", h.ListForDoula)
	}
}

type createContractRequest struct {
	DoulaID   string     `json:"doulaId" binding:"required" validate:"required,uuid"`
	StartDate time.Time  `json:"startDate" binding:"required" validate:"required"`
	EndDate   *time.Time `json:"endDate"`
}

func (h *ContractHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req createContractRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	contract, err := h.contractService.Create(services.CreateContractRequest{
		ParentID:  userID,
		DoulaID:   req.DoulaID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contract)
}

type updateContractStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=completed cancelled"`
}

func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req updateContractStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contractService.UpdateStatus(c.Param("contractId"), models.ContractStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "contract status updated",
	})
}

func (h *ContractHandler) ListForParent(c *gin.Context) {
	contracts, err := h.contractService.ListForParent(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *ContractHandler) ListForDoula(c *gin.Context) {
	contracts, err := h.contractService.ListForDoula(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}
