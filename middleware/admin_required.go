// Package middleware - checks that the session belongs to the administrator.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"street-scan/logger"
)

// AdminRequired is a middleware that checks if the user is the administrator.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isAdmin, ok := session.Get("isAdmin").(bool)

		if !ok || !isAdmin {
			logger.Warn.Println("AdminRequired: unauthorized attempt blocked")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		logger.Debug.Println("AdminRequired: passed, continuing request")
		c.Next()
	}
}
