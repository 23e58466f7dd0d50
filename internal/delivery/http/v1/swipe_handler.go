package v1

import (
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUC domain.SwipeUsecase
	feedUC  domain.FeedUsecase
}

// NewSwipeHandler registers the feed and swipe routes
func NewSwipeHandler(r *gin.RouterGroup, swipeUC domain.SwipeUsecase, feedUC domain.FeedUsecase) {
	handler := &SwipeHandler{swipeUC: swipeUC, feedUC: feedUC}

	r.GET("/feed", handler.GetFeed)
	r.POST("/swipes", handler.RecordSwipe)
}

// GetFeed godoc
// @Summary      Get my swipe deck
// @Description  Opposite-role profiles excluding self and matched counterparts
// @Tags         feed
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Feed}
// @Failure      401  {object}  response.Response
// @Router       /feed [get]
// @Security     BearerAuth
func (h *SwipeHandler) GetFeed(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	feed, err := h.feedUC.BuildFeed(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feed built", feed)
}

// RecordSwipeRequest is the right-swipe payload. A left swipe writes
// nothing and therefore has no endpoint.
type RecordSwipeRequest struct {
	SwipedID string `json:"swiped_id" binding:"required"`
}

// RecordSwipe godoc
// @Summary      Record a right swipe
// @Description  Records interest and reports whether it completed a mutual match
// @Tags         swipes
// @Accept       json
// @Produce      json
// @Param        body  body      RecordSwipeRequest  true  "Swipe target"
// @Success      200   {object}  response.Response{data=domain.SwipeResult}
// @Failure      400   {object}  response.Response
// @Router       /swipes [post]
// @Security     BearerAuth
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req RecordSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("swiped_id is required"))
		return
	}

	result, err := h.swipeUC.RecordSwipe(c.Request.Context(), userID, req.SwipedID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Interest recorded"
	if result.Matched {
		message = "It's a match"
	}
	response.Success(c, http.StatusOK, message, result)
}
