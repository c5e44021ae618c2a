package api

import (
	"net/http"
	"strings"

	"zynta_referral/internal/middleware"
	"zynta_referral/internal/service"
	"zynta_referral/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	// IndexFile is served for GET /. Empty disables the page.
	IndexFile    string
	AllowOrigins []string
}

func NewRouter(us service.UserServiceI, hub *service.NotificationHub, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(recoverPanic))
	router.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	a := router.Group("/api")
	NewUserRoutes(a, us)
	if hub != nil {
		NewEventRoutes(a, hub)
	}

	if cfg.IndexFile != "" {
		router.StaticFile("/", cfg.IndexFile)
	}

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			respondError(c, http.StatusNotFound, msgEndpointNotFound)
			return
		}
		c.String(http.StatusNotFound, "Not Found")
	})

	return router
}

// recoverPanic answers a panic inside a route handler like any other
// internal failure; a panic before any route matched gets the generic message.
func recoverPanic(c *gin.Context, recovered any) {
	logger.Logger().Error("panic recovered",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("route", c.FullPath()),
		zap.Stack("stack"))

	message := msgInternalError
	if c.FullPath() == "" {
		message = msgSomethingWentWrong
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   message,
	})
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
	}
	config.AllowHeaders = []string{"Origin", "Content-Type", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	return config
}
