package v1

import (
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers auth routes
func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/sync", handler.Sync)
		auth.GET("/me", handler.Me)
	}
}

// SyncRequest carries the role picked at signup.
type SyncRequest struct {
	Role string `json:"role" binding:"required,oneof=job_seeker recruiter"`
}

// Sync godoc
// @Summary      Sync authenticated user
// @Description  Create the local user row for the Supabase subject; no-op if it already exists
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SyncRequest  true  "Signup role"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /auth/sync [post]
// @Security     BearerAuth
func (h *AuthHandler) Sync(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Role must be job_seeker or recruiter"))
		return
	}

	user := &domain.User{ID: userID, Email: email, Role: req.Role}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User synced", user)
}

// Me godoc
// @Summary      Get current user
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
