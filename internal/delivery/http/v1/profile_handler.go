package v1

import (
	"go-swipehire-backend/internal/delivery/http/middleware"
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/pkg/apperror"
	"go-swipehire-backend/pkg/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Profile asset uploads are capped well below gin's default memory limit;
// avatars and logos are small images.
const maxAssetSize = 5 << 20 // 5 MB

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	uploader  *storage.Uploader
}

// NewProfileHandler registers profile routes. uploader may be nil when
// S3 is not configured; the assets endpoint then reports unavailable.
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase, uploader *storage.Uploader) {
	handler := &ProfileHandler{profileUC: profileUC, uploader: uploader}

	profiles := r.Group("/profiles")
	{
		profiles.POST("", handler.CreateProfile)
		profiles.GET("/me", handler.GetMyProfile)
		profiles.PUT("/me", handler.UpdateProfile)
		profiles.GET("/:id", handler.GetProfile)
		profiles.POST("/assets",
			middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()),
			handler.UploadAsset)
	}
}

// CreateProfile godoc
// @Summary      Create my profile
// @Description  Write the signup profile; fields for the other role are stored as null
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Profile  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profiles [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.CreateProfile(c.Request.Context(), userID, &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// GetMyProfile godoc
// @Summary      Get my profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update my profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Profile  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), userID, &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetProfile godoc
// @Summary      Get a profile by user id
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UploadAsset godoc
// @Summary      Upload a profile asset
// @Description  Store an avatar or company logo and return its public URL
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  formData  string  true  "Asset kind (avatar or company_logo)"
// @Param        file  formData  file    true  "Image file"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profiles/assets [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadAsset(c *gin.Context) {
	if h.uploader == nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, "Asset uploads are not available", nil))
		return
	}

	kind := c.PostForm("kind")
	folder := "avatars"
	if kind == "company_logo" {
		folder = "company-logos"
	} else if kind != "avatar" {
		c.Error(apperror.BadRequest("kind must be avatar or company_logo"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}
	if fileHeader.Size > maxAssetSize {
		c.Error(apperror.BadRequest("file exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(
		c.Request.Context(),
		folder,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusCreated, "Asset uploaded", gin.H{"url": url})
}
