package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cronRouter(secret string) *gin.Engine {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.cronAuthentication(secret))
	router.POST("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
	})
	return router
}

func TestCronAuthentication(t *testing.T) {
	router := cronRouter("s3cret")

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCronAuthenticationWrongSecret(t *testing.T) {
	router := cronRouter("s3cret")

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestCronAuthenticationMissingHeader(t *testing.T) {
	router := cronRouter("s3cret")

	req := httptest.NewRequest("POST", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

// an unset secret must close the endpoint rather than open it
func TestCronAuthenticationEmptySecret(t *testing.T) {
	router := cronRouter("")

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
