// Package controllers wires HTTP requests to the core services.
// File: controllers/controllers.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"street-scan/feed"
	"street-scan/logger"
	"street-scan/models"
	"street-scan/services"
)

// Package-level collaborators, set once from main (or from tests).
var (
	identityService   services.IdentityServiceInterface
	reportService     services.ReportServiceInterface
	commentService    services.CommentServiceInterface
	classifierService services.ClassifierServiceInterface
	messenger         feed.Messenger
	applicationURL    string
)

// Init provides the controllers with their collaborators.
func Init(
	identity services.IdentityServiceInterface,
	reports services.ReportServiceInterface,
	comments services.CommentServiceInterface,
	classifier services.ClassifierServiceInterface,
	m feed.Messenger,
	appURL string,
) {
	identityService = identity
	reportService = reports
	commentService = comments
	classifierService = classifier
	messenger = m
	applicationURL = appURL
}

// Health responds to load balancer checks.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ----------------- shared helpers -----------------

// sessionID extracts the session ID the login handler put in the cookie. An
// absent or foreign-typed value comes back empty, which downstream treats as
// anonymous.
func sessionID(c *gin.Context) string {
	sid, _ := sessions.Default(c).Get("sid").(string)
	return sid
}

// currentSession resolves the requesting browser's session or writes the 401
// response and returns nil. The middleware already redirects anonymous page
// loads; this is the explicit authorization-required result for API callers.
func currentSession(c *gin.Context) *models.Session {
	sess, err := identityService.CurrentSession(sessionID(c))
	if err != nil {
		logger.Error.Printf("[currentSession] store failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again"})
		return nil
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required", "redirect": "/login"})
		return nil
	}
	return sess
}

// reportID parses the :id route parameter. The comparison downstream is
// numeric regardless of how the caller formatted the value.
func reportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return 0, false
	}
	return id, true
}

func publish(eventType string, payload any) {
	if messenger != nil {
		messenger.Publish(eventType, payload)
	}
}

// renderError maps core errors onto HTTP statuses with inline messages.
func renderError(c *gin.Context, err error) {
	var rejected *models.ClassificationRejectedError
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAuthorization):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &rejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           "Non-pothole image. Please upload an image of a pothole.",
			"modelConfidence": rejected.Confidence,
		})
	default:
		logger.Error.Printf("[renderError] unexpected: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again"})
	}
}
