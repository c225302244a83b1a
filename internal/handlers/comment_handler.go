package handlers

import (
	"net/http"

	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	{
		comments.POST("", h.Create)
		comments.GET("/doula/:userId", h.ListForDoula)
	}
}

type createCommentRequest struct {
	ContractID string `json:"contractId" binding:"required" validate:"required,uuid"`
	Comment    string `json:"comment" binding:"required" validate:"required,max=160"`
	Rating     int    `json:"rating" binding:"required" validate:"required,min=1,max=5"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(services.CreateCommentRequest{
		ContractID:   req.ContractID,
		ParentUserID: userID,
		Comment:      req.Comment,
		Rating:       req.Rating,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) ListForDoula(c *gin.Context) {
	comments, err := h.commentService.ListForDoula(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
