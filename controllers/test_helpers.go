// file: controllers/test_helpers.go
package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"street-scan/feed"
	"street-scan/models"
	"street-scan/services"
	"street-scan/store"
)

const (
	testAdminEmail    = "admin@streetscan.local"
	testAdminPassword = "super-secret"
)

var positiveTestVerdict = models.Verdict{
	PotholePresent: true,
	Confidence:     models.Confidence{Pothole: 0.93, NonPothole: 0.07},
}

// setupTest wires the controllers to fresh in-memory collaborators and
// returns a router with the full route table, plus the mocks for assertions.
func setupTest(t *testing.T) (*gin.Engine, *feed.MockMessenger, *services.MockClassifierService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemStore()
	classifier := &services.MockClassifierService{Verdict: positiveTestVerdict}
	messenger := &feed.MockMessenger{}
	Init(
		services.NewIdentityService(st, testAdminEmail, testAdminPassword, nil),
		services.NewReportService(st),
		services.NewCommentService(st),
		classifier,
		messenger,
		"http://localhost:8080",
	)

	router := gin.New()
	router.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))
	RegisterRoutes(router)
	return router, messenger, classifier
}

// doJSON performs a request with a JSON body and optional session cookies.
func doJSON(router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers the user (unless admin) and returns the session
// cookies from a successful login.
func signupAndLogin(t *testing.T, router *gin.Engine, name, email, password string) []*http.Cookie {
	t.Helper()
	if email != testAdminEmail {
		w := doJSON(router, "POST", "/signup", gin.H{"name": name, "email": email, "password": password}, nil)
		// conflict just means this test already registered the account
		require.Contains(t, []int{http.StatusCreated, http.StatusConflict}, w.Code)
	}
	w := doJSON(router, "POST", "/login", gin.H{"email": email, "password": password}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

// submitReport uploads a multipart photo submission and returns the recorder.
func submitReport(router *gin.Engine, cookies []*http.Cookie, description, address, landmark string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("image", "pothole.jpg")
	_, _ = part.Write([]byte("fake-jpeg-bytes"))
	_ = writer.WriteField("description", description)
	_ = writer.WriteField("address", address)
	_ = writer.WriteField("landmark", landmark)
	_ = writer.Close()

	req, _ := http.NewRequest("POST", "/reports", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// createdReport decodes the report out of a 201 response.
func createdReport(t *testing.T, w *httptest.ResponseRecorder) models.Report {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Report models.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Report
}
