package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leetguide/backend/internal/apierror"
	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/internal/service"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

// GetRecommendations handles POST /api/v1/recommendations
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(
			apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "username", Message: "is required", Code: "required"},
			}))
		return
	}

	ctx := logger.WithUsername(c.Request.Context(), req.Username)
	recs, err := h.recommendationService.GetRecommendations(ctx, req)
	if err != nil {
		logger.Ctx(ctx).Error("recommendation request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, recs)
}

// GetLearningPath handles POST /api/v1/learning-path
func (h *RecommendationHandler) GetLearningPath(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(
			apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "username", Message: "is required", Code: "required"},
			}))
		return
	}

	ctx := logger.WithUsername(c.Request.Context(), req.Username)
	path, err := h.recommendationService.GetLearningPath(ctx, req.Username)
	if err != nil {
		writeStatsError(c, err, req.Username)
		return
	}

	c.JSON(http.StatusOK, path)
}
