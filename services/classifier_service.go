// Package services: services/classifier_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"street-scan/logger"
	"street-scan/models"
)

// ClassifierServiceInterface is the external model collaborator. It gates
// report creation: one call per submission attempt with the raw image bytes.
type ClassifierServiceInterface interface {
	Classify(ctx context.Context, image []byte, filename string) (models.Verdict, error)
}

// inferResponse is the wire shape of the model service's reply.
type inferResponse struct {
	PotholePresent       bool    `json:"pothole_present"`
	PotholeConfidence    float64 `json:"pothole_confidence"`
	NonPotholeConfidence float64 `json:"nonpothole_confidence"`
	Error                string  `json:"error"`
}

// ClassifierService calls the model service over HTTP with a multipart
// "image" field. There is no retry: a failure surfaces to the user, who must
// resubmit.
type ClassifierService struct {
	URL    string
	Client *http.Client
}

// NewClassifierService builds a classifier client for the given endpoint.
func NewClassifierService(url string) *ClassifierService {
	return &ClassifierService{
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Classify submits the image and decodes the verdict. A non-2xx response or
// malformed body comes back as an error naming the underlying cause.
func (s *ClassifierService) Classify(ctx context.Context, image []byte, filename string) (models.Verdict, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return models.Verdict{}, err
	}
	if _, err := part.Write(image); err != nil {
		return models.Verdict{}, err
	}
	if err := writer.Close(); err != nil {
		return models.Verdict{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, &body)
	if err != nil {
		return models.Verdict{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.Client.Do(req)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("classifier unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("classifier response unreadable: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the body may be anything on an error status, an upstream HTML page
		// included; decode it only to surface the error field if present
		var failure inferResponse
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
			return models.Verdict{}, fmt.Errorf("classifier returned %d: %s", resp.StatusCode, failure.Error)
		}
		return models.Verdict{}, fmt.Errorf("classifier returned %d", resp.StatusCode)
	}

	var decoded inferResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return models.Verdict{}, fmt.Errorf("classifier response malformed: %w", err)
	}

	logger.Debug.Printf("[Classify] pothole=%v (%.3f / %.3f)",
		decoded.PotholePresent, decoded.PotholeConfidence, decoded.NonPotholeConfidence)

	return models.Verdict{
		PotholePresent: decoded.PotholePresent,
		Confidence: models.Confidence{
			Pothole:    decoded.PotholeConfidence,
			NonPothole: decoded.NonPotholeConfidence,
		},
	}, nil
}
