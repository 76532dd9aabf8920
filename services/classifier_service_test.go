// services/classifier_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPositiveVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "pothole.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pothole_present": true, "pothole_confidence": 0.91, "nonpothole_confidence": 0.09}`))
	}))
	defer srv.Close()

	svc := NewClassifierService(srv.URL)
	verdict, err := svc.Classify(context.Background(), []byte("fake-jpeg"), "pothole.jpg")
	require.NoError(t, err)
	assert.True(t, verdict.PotholePresent)
	assert.Equal(t, 0.91, verdict.Confidence.Pothole)
	assert.Equal(t, 0.09, verdict.Confidence.NonPothole)
}

func TestClassifyNegativeVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"pothole_present": false, "pothole_confidence": 0.2, "nonpothole_confidence": 0.8}`))
	}))
	defer srv.Close()

	svc := NewClassifierService(srv.URL)
	verdict, err := svc.Classify(context.Background(), []byte("fake"), "x.jpg")
	require.NoError(t, err)
	assert.False(t, verdict.PotholePresent)
}

func TestClassifySurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not trained"}`))
	}))
	defer srv.Close()

	svc := NewClassifierService(srv.URL)
	_, err := svc.Classify(context.Background(), []byte("fake"), "x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not trained")
}

func TestClassifyNamesStatusOnNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html><body>502 Bad Gateway</body></html>`))
	}))
	defer srv.Close()

	svc := NewClassifierService(srv.URL)
	_, err := svc.Classify(context.Background(), []byte("fake"), "x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier returned 502")
	assert.NotContains(t, err.Error(), "malformed")
}

func TestClassifySurfacesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	svc := NewClassifierService(srv.URL)
	_, err := svc.Classify(context.Background(), []byte("fake"), "x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestClassifySurfacesNetworkFailure(t *testing.T) {
	svc := NewClassifierService("http://127.0.0.1:1/api/infer")
	_, err := svc.Classify(context.Background(), []byte("fake"), "x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
