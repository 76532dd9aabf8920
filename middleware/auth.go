// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"street-scan/logger"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the user is logged in.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "sid" session variable is set.
// - If no session ID is found, redirects to "/login" and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	protected := router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	sid := session.Get("sid")

	// block request if the session id cookie is missing
	if sid == nil {
		logger.Warn.Printf("AuthRequired: no session id for %s", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] user authenticated, proceeding with request")
	c.Next()
}
