package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-contact-backend/config"
	"go-contact-backend/internal/delivery/http/middleware"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/ratelimit"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Limiter   ratelimit.Limiter
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	root := r.Group("")

	// Health Check
	root.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Contact form (no auth required, rate limited per client IP)
	contactLimit := middleware.RateLimitMiddleware(deps.Limiter, middleware.RateLimitConfig{
		Limit: deps.Config.RateLimitMaxRequests,
	})
	NewContactHandler(root, contactLimit, deps.ContactUC)

	// Swagger
	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
