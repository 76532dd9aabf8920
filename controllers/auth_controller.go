// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"street-scan/logger"
)

type signupRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Signup creates an account. It never logs the user in: the caller is
// expected to go through /login afterwards.
func Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := identityService.Signup(req.Name, req.Email, req.Password); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "account created, please log in"})
}

// Login authenticates and stores the issued session ID in the cookie. The
// cookie carries only that reference (plus the admin flag the route gate
// reads); the session snapshot itself lives in the store, so the two cannot
// drift apart.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sid, sess, err := identityService.Login(req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	cookie := sessions.Default(c)
	cookie.Set("sid", sid)
	cookie.Set("isAdmin", sess.IsAdmin)
	if err := cookie.Save(); err != nil {
		logger.Error.Println("Login: failed to save session cookie:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess})
}

// Logout clears the requesting browser's session record and cookie, then
// sends the browser home. Other logged-in browsers stay logged in.
func Logout(c *gin.Context) {
	if sid := sessionID(c); sid != "" {
		if err := identityService.Logout(sid); err != nil {
			logger.Error.Println("Logout: failed to clear session record:", err)
		}
	}

	cookie := sessions.Default(c)
	cookie.Clear()
	if err := cookie.Save(); err != nil {
		logger.Warn.Println("Logout: failed to save cleared cookie:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// GetSession reports who is logged in on this browser, if anyone.
func GetSession(c *gin.Context) {
	sess, err := identityService.CurrentSession(sessionID(c))
	if err != nil {
		logger.Error.Printf("GetSession: store failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess})
}

// ShowLoginPage is the redirect target for unauthenticated requests.
func ShowLoginPage(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
}
