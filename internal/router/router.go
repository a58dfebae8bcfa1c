package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zascript/qrlink-core/internal/admin"
	"github.com/zascript/qrlink-core/internal/auth"
	"github.com/zascript/qrlink-core/internal/config"
	"github.com/zascript/qrlink-core/internal/links"
	"github.com/zascript/qrlink-core/internal/qr"
	"github.com/zascript/qrlink-core/internal/redirect"
)

// New wires every route against the given configuration. Tests stand the
// returned engine up with httptest.
func New(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	b := links.NewBuilder(cfg.BaseURL, cfg.MobileBaseURL)
	adminHandler := admin.NewHandler(b)
	redirectHandler := redirect.NewHandler(b)

	r.GET("/health", healthHandler(cfg))

	adminAPI := r.Group("/api/admin")
	{
		adminAPI.POST("/users", adminHandler.CreateAccount)
		adminAPI.GET("/users", adminHandler.ListAccounts)
		adminAPI.PUT("/users/:id/toggle-status", adminHandler.ToggleStatus)
		adminAPI.DELETE("/users/:id", adminHandler.DeleteAccount)
		adminAPI.POST("/qr/:uuid/regenerate", adminHandler.RegenerateQR)
	}

	r.POST("/api/auth/login", auth.LoginHandler)

	r.GET("/api/qr/:uuid", qr.GetProfileHandler)
	r.PUT("/api/qr/:uuid", qr.UpdateProfileHandler)
	r.GET("/api/public/qr/:uuid", qr.PublicProfileHandler)

	r.GET("/edit/:uuid", redirectHandler.Edit)
	r.GET("/scan/:uuid", redirectHandler.Scan)

	return r
}

func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		mobileBase := cfg.MobileBaseURL
		if mobileBase == "" {
			mobileBase = "Not configured"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":        "OK",
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"baseUrl":       cfg.BaseURL,
			"mobileBaseUrl": mobileBase,
		})
	}
}
