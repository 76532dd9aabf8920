// Package services: services/mock_classifier_service.go
package services

import (
	"context"

	"street-scan/models"
)

// MockClassifierService is a canned classifier used in tests and local
// development when no model service is running.
type MockClassifierService struct {
	Verdict models.Verdict
	Err     error
	Calls   int
}

// Classify returns the configured verdict or error without touching the
// image.
func (m *MockClassifierService) Classify(_ context.Context, _ []byte, _ string) (models.Verdict, error) {
	m.Calls++
	if m.Err != nil {
		return models.Verdict{}, m.Err
	}
	return m.Verdict, nil
}
