// Package services: services/locator.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"street-scan/models"
)

// Locator resolves the device's position. Injected into the identity service
// so tests can substitute a fake and deployments without a geolocation
// endpoint can pass nil.
type Locator interface {
	Locate(ctx context.Context) (models.Location, error)
}

// HTTPLocator queries a geolocation endpoint returning
// {"latitude": ..., "longitude": ...}.
type HTTPLocator struct {
	URL    string
	Client *http.Client
}

// NewHTTPLocator builds a locator for the given endpoint.
func NewHTTPLocator(url string) *HTTPLocator {
	return &HTTPLocator{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Locate performs the lookup.
func (l *HTTPLocator) Locate(ctx context.Context) (models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return models.Location{}, err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("geolocation endpoint returned %d", resp.StatusCode)
	}

	var loc models.Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return models.Location{}, fmt.Errorf("geolocation response malformed: %w", err)
	}
	return loc, nil
}
