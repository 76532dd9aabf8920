// Package controllers - per-report comment endpoints.
// File: controllers/comment_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"street-scan/feed"
)

type commentRequest struct {
	Text string `json:"text" form:"text"`
}

// ListComments returns the report's comments, newest first.
func ListComments(c *gin.Context) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	comments, err := commentService.ListFor(id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment appends a comment under the caller's identity snapshot.
func AddComment(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	id, ok := reportID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := commentService.Add(id, *sess, req.Text)
	if err != nil {
		renderError(c, err)
		return
	}
	publish(feed.EventCommentAdded, gin.H{"reportId": id, "commentId": comment.ID})
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
