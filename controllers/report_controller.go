// Package controllers - report submission, gallery and lifecycle endpoints.
// File: controllers/report_controller.go
package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"street-scan/feed"
	"street-scan/logger"
	"street-scan/models"
	"street-scan/services"
)

// maxImageBytes bounds how much photo data one submission may carry.
const maxImageBytes = 10 << 20

// CreateReport handles a photo submission. The flow mirrors the original
// form: classify first, create only on a positive verdict, surface the
// confidence scores on rejection.
func CreateReport(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required (form field \"image\")"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}
	if takenAt := c.PostForm("taken_at"); takenAt != "" && !isRecent(takenAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload recent image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	verdict, err := classifierService.Classify(c.Request.Context(), image, fileHeader.Filename)
	if err != nil {
		logger.Error.Printf("CreateReport: classification failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("unable to analyze image: %v", err)})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

	report, err := reportService.Create(
		*sess,
		dataURL,
		c.PostForm("description"),
		c.PostForm("address"),
		c.PostForm("landmark"),
		verdict,
	)
	if err != nil {
		var rejected *models.ClassificationRejectedError
		if errors.As(err, &rejected) {
			feed.PublishClassificationRejection()
		}
		renderError(c, err)
		return
	}

	feed.PublishReportSubmission()
	publish(feed.EventReportCreated, gin.H{"id": report.ID, "address": report.Address, "status": report.Status})
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// isRecent accepts photos taken yesterday or today, matching the upload
// form's freshness rule.
func isRecent(takenAt string) bool {
	ts, err := time.Parse(time.RFC3339, takenAt)
	if err != nil {
		// unknown capture time: be conservative and allow the upload
		return true
	}
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.Add(-24 * time.Hour)
	return !ts.Before(startOfYesterday)
}

// Gallery returns every report, newest first.
func Gallery(c *gin.Context) {
	reports, err := reportService.List()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// MyReports returns the caller's own reports.
func MyReports(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	reports, err := reportService.ListByOwner(sess.Email)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetReport returns one report by id.
func GetReport(c *gin.Context) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	report, err := reportService.GetByID(id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// DeleteReport removes a report; only its owner may do so.
func DeleteReport(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	id, ok := reportID(c)
	if !ok {
		return
	}
	if err := reportService.Delete(id, sess.Email); err != nil {
		renderError(c, err)
		return
	}
	publish(feed.EventReportDeleted, gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ToggleUpvote flips the caller's upvote on a report.
func ToggleUpvote(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	id, ok := reportID(c)
	if !ok {
		return
	}
	report, upvoted, err := reportService.ToggleUpvote(id, sess.Email)
	if err != nil {
		renderError(c, err)
		return
	}
	publish(feed.EventUpvoteChanged, gin.H{"id": id, "upvotes": len(report.Upvotes)})
	c.JSON(http.StatusOK, gin.H{"upvoted": upvoted, "upvotes": len(report.Upvotes)})
}

type statusRequest struct {
	Status string `json:"status" form:"status"`
}

// UpdateStatus moves a report through its lifecycle. The route sits behind
// AdminRequired; the service checks the requester again regardless.
func UpdateStatus(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	id, ok := reportID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		renderError(c, err)
		return
	}

	report, err := reportService.SetStatus(id, status, *sess)
	if err != nil {
		renderError(c, err)
		return
	}
	publish(feed.EventStatusChanged, gin.H{"id": id, "status": report.Status})
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ReportQRCode renders a QR code linking to the report's detail page.
func ReportQRCode(c *gin.Context) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	if _, err := reportService.GetByID(id); err != nil {
		renderError(c, err)
		return
	}
	png, err := services.GenerateReportQRCode(applicationURL, id, 256)
	if err != nil {
		logger.Error.Printf("ReportQRCode: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
