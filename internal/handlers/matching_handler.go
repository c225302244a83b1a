package handlers

import (
	"net/http"

	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	matching := rg.Group("/matching")
	{
		matching.GET("/doulas/:userId", h.DoulasForParent)
		matching.GET("/parents/:userId", h.ParentsForDoula)
	}
}

// DoulasForParent returns compatible doulas for the parent. A missing
// parent profile is a 404; zero matches is a 200 with an empty list.
func (h *MatchingHandler) DoulasForParent(c *gin.Context) {
	matches, err := h.matchingService.MatchDoulasForParent(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

func (h *MatchingHandler) ParentsForDoula(c *gin.Context) {
	matches, err := h.matchingService.MatchParentsForDoula(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
