// middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(seed map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	if seed != nil {
		router.Use(func(c *gin.Context) {
			session := sessions.Default(c)
			for k, v := range seed {
				session.Set(k, v)
			}
			_ = session.Save()
			c.Next()
		})
	}
	return router
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	router := setupRouter(nil)
	router.GET("/gallery", AuthRequired, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/gallery", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthRequiredPassesLoggedInUser(t *testing.T) {
	router := setupRouter(map[string]interface{}{"sid": "abc123"})
	router.GET("/gallery", AuthRequired, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/gallery", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequiredBlocksNonAdmin(t *testing.T) {
	router := setupRouter(map[string]interface{}{"sid": "abc123", "isAdmin": false})
	router.PUT("/reports/1/status", AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("PUT", "/reports/1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredBlocksMissingFlag(t *testing.T) {
	router := setupRouter(map[string]interface{}{"sid": "abc123"})
	router.PUT("/reports/1/status", AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("PUT", "/reports/1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredPassesAdmin(t *testing.T) {
	router := setupRouter(map[string]interface{}{"sid": "abc123", "isAdmin": true})
	router.PUT("/reports/1/status", AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("PUT", "/reports/1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
