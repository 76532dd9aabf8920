// main.go
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"street-scan/config"
	"street-scan/controllers"
	"street-scan/feed"
	"street-scan/logger"
	"street-scan/services"
	"street-scan/store"
)

func main() {
	// Set Gin to release mode for production (optional but recommended)
	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()
	logger.SetLogLevel(cfg.Env)
	feed.EnableMetrics(cfg.Env == "production")

	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	var locator services.Locator
	if cfg.GeolocationURL != "" {
		locator = services.NewHTTPLocator(cfg.GeolocationURL)
	}

	controllers.Init(
		services.NewIdentityService(st, cfg.AdminEmail, cfg.AdminPassword, locator),
		services.NewReportService(st),
		services.NewCommentService(st),
		services.NewClassifierService(cfg.InferURL),
		feed.NewMessenger(),
		cfg.ApplicationURL,
	)

	// Initialize the router
	router := gin.Default()

	// Initialize session store
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("streetscan", sessionStore))

	controllers.RegisterRoutes(router)

	// Start the live feed broadcaster
	go feed.HandleMessages()

	logger.Info.Printf("Listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
