// controllers/comment_controller_test.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"street-scan/feed"
	"street-scan/models"
)

func TestAddAndListComments(t *testing.T) {
	router, messenger, _ := setupTest(t)
	cookies := signupAndLogin(t, router, "Asha", "a@x.com", "p1")
	report := createdReport(t, submitReport(router, cookies, "d", "a", "l"))
	messenger.Events = nil

	path := fmt.Sprintf("/reports/%d/comments", report.ID)

	w := doJSON(router, "POST", path, gin.H{"text": "please fix this"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", path, gin.H{"text": "still open"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, messenger.Events, 2)
	assert.Equal(t, feed.EventCommentAdded, messenger.Events[0].Type)

	w = doJSON(router, "GET", path, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 2)
	// newest first
	assert.Equal(t, "still open", resp.Comments[0].Text)
	assert.Equal(t, "please fix this", resp.Comments[1].Text)
	assert.Equal(t, "a@x.com", resp.Comments[0].User.Email)
}

func TestAddCommentRejectsBlankText(t *testing.T) {
	router, _, _ := setupTest(t)
	cookies := signupAndLogin(t, router, "Asha", "a@x.com", "p1")
	report := createdReport(t, submitReport(router, cookies, "d", "a", "l"))

	w := doJSON(router, "POST", fmt.Sprintf("/reports/%d/comments", report.ID), gin.H{"text": "   "}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCommentsEmptyIsValid(t *testing.T) {
	router, _, _ := setupTest(t)
	cookies := signupAndLogin(t, router, "Asha", "a@x.com", "p1")
	report := createdReport(t, submitReport(router, cookies, "d", "a", "l"))

	w := doJSON(router, "GET", fmt.Sprintf("/reports/%d/comments", report.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comments": []}`, w.Body.String())
}
