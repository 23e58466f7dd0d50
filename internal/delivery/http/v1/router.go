package v1

import (
	"go-swipehire-backend/config"
	"go-swipehire-backend/internal/delivery/http/middleware"
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/pkg/auth"
	"go-swipehire-backend/pkg/redis"
	"go-swipehire-backend/pkg/storage"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	FeedUC       domain.FeedUsecase
	SwipeUC      domain.SwipeUsecase
	MatchUC      domain.MatchUsecase
	MessageUC    domain.MessageUsecase
	Hub          *relay.Hub
	Uploader     *storage.Uploader // nil when S3 is not configured
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	global := middleware.DefaultRateLimitConfig()
	global.Limit = deps.Config.RateLimitGlobalThreshold
	global.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(global))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"redis": redis.IsAvailable(),
		})
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewProfileHandler(protected, deps.ProfileUC, deps.Uploader)
		NewMatchHandler(protected, deps.MatchUC, deps.MessageUC)
		NewEventsHandler(protected, deps.Hub)

		// Swipes carry their own per-user throttle on top of the global one
		swipes := protected.Group("")
		swipes.Use(middleware.RateLimitMiddleware(middleware.SwipeRateLimitConfig(
			deps.Config.RateLimitSwipeThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		)))
		NewSwipeHandler(swipes, deps.SwipeUC, deps.FeedUC)
	}

	return r
}
