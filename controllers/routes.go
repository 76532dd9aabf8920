// Package controllers - route table shared by main and the tests.
// File: controllers/routes.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"street-scan/feed"
	"street-scan/middleware"
)

// RegisterRoutes attaches every endpoint to the router. Session middleware
// must already be installed.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/health", Health)

	// Public routes
	router.GET("/login", ShowLoginPage)
	router.POST("/login", Login)
	router.POST("/signup", Signup)
	router.GET("/logout", Logout)
	router.GET("/session", GetSession)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/gallery", Gallery)
		protected.GET("/my-reports", MyReports)
		protected.POST("/reports", CreateReport)
		protected.GET("/reports/:id", GetReport)
		protected.DELETE("/reports/:id", DeleteReport)
		protected.POST("/reports/:id/upvote", ToggleUpvote)
		protected.GET("/reports/:id/comments", ListComments)
		protected.POST("/reports/:id/comments", AddComment)
		protected.GET("/reports/:id/qrcode", ReportQRCode)
		protected.GET("/feed", func(c *gin.Context) {
			feed.ServeWs(c.Writer, c.Request)
		})
	}

	// Administrator routes
	admin := router.Group("/", middleware.AuthRequired, middleware.AdminRequired())
	{
		admin.PUT("/reports/:id/status", UpdateStatus)
	}
}
