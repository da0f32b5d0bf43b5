package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leetguide/backend/internal/apierror"
	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/repository"
	"github.com/leetguide/backend/internal/service"
)

// upstreamRetrySeconds is the Retry-After hint on 503 responses.
const upstreamRetrySeconds = 30

type UserHandler struct {
	statsService service.StatsService
}

// NewUserHandler creates a new user stats handler
func NewUserHandler(statsService service.StatsService) *UserHandler {
	return &UserHandler{
		statsService: statsService,
	}
}

// GetUserStats handles GET /api/v1/leetcode/user/:username
func (h *UserHandler) GetUserStats(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), "username is required", "Please provide a username"))
		return
	}

	ctx := logger.WithUsername(c.Request.Context(), username)
	stats, err := h.statsService.GetUserStats(ctx, username)
	if err != nil {
		writeStatsError(c, err, username)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CompareUsers handles GET /api/v1/leetcode/compare/:user1/:user2
func (h *UserHandler) CompareUsers(c *gin.Context) {
	user1 := c.Param("user1")
	user2 := c.Param("user2")
	if user1 == "" || user2 == "" {
		apierror.WriteProblem(c, apierror.NewBadRequestError(
			apierror.GetRequestID(c), "two usernames are required", "Please provide two usernames"))
		return
	}

	comparison, err := h.statsService.CompareUsers(c.Request.Context(), user1, user2)
	if err != nil {
		writeStatsError(c, err, user1+"/"+user2)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// writeStatsError maps service errors onto problem responses.
func writeStatsError(c *gin.Context, err error, username string) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		apierror.WriteProblem(c, apierror.NewUserNotFoundError(requestID, username))
	case errors.Is(err, repository.ErrUpstreamUnavailable):
		apierror.WriteProblem(c, apierror.NewUpstreamUnavailableError(requestID, upstreamRetrySeconds))
	default:
		logger.Ctx(c.Request.Context()).Error("stats request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
