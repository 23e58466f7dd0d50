package v1

import (
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC   domain.MatchUsecase
	messageUC domain.MessageUsecase
}

// NewMatchHandler registers match and chat routes
func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase, messageUC domain.MessageUsecase) {
	handler := &MatchHandler{matchUC: matchUC, messageUC: messageUC}

	matches := r.Group("/matches")
	{
		matches.GET("", handler.ListMatches)
		matches.GET("/:id", handler.GetMatch)
		matches.GET("/:id/messages", handler.ListMessages)
		matches.POST("/:id/messages", handler.SendMessage)
		matches.POST("/:id/read", handler.MarkThreadRead)
	}

	r.GET("/me/unread_count", handler.UnreadCount)
}

// ListMatches godoc
// @Summary      List my matches
// @Description  Matches with counterpart profile and unread count, newest first
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.MatchSummary}
// @Failure      401  {object}  response.Response
// @Router       /matches [get]
// @Security     BearerAuth
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	matches, err := h.matchUC.ListMatches(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}

// GetMatch godoc
// @Summary      Get a match
// @Description  Participant-only; this is the chat access check
// @Tags         matches
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  response.Response{data=domain.Match}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches/{id} [get]
// @Security     BearerAuth
func (h *MatchHandler) GetMatch(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	match, err := h.matchUC.GetMatch(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match retrieved", match)
}

// ListMessages godoc
// @Summary      List messages in a match
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  response.Response{data=[]domain.Message}
// @Failure      403  {object}  response.Response
// @Router       /matches/{id}/messages [get]
// @Security     BearerAuth
func (h *MatchHandler) ListMessages(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	messages, err := h.messageUC.ListMessages(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", messages)
}

// SendMessageRequest is the chat message payload
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Match ID"
// @Param        body  body      SendMessageRequest  true  "Message content"
// @Success      201   {object}  response.Response{data=domain.Message}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /matches/{id}/messages [post]
// @Security     BearerAuth
func (h *MatchHandler) SendMessage(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Message content cannot be empty"))
		return
	}

	msg, err := h.messageUC.SendMessage(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// MarkThreadRead godoc
// @Summary      Mark a thread read
// @Description  Bulk-flips every unread message the viewer received; idempotent
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Match ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /matches/{id}/read [post]
// @Security     BearerAuth
func (h *MatchHandler) MarkThreadRead(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.messageUC.MarkThreadRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thread marked read", nil)
}

// UnreadCount godoc
// @Summary      Get my unread message count
// @Description  Unread messages addressed to me across all my matches
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me/unread_count [get]
// @Security     BearerAuth
func (h *MatchHandler) UnreadCount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	count, err := h.messageUC.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unread count retrieved", gin.H{"unread_count": count})
}
