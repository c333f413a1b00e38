package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	t.Run("minted when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get(KeyRequestID)
		_, err := uuid.Parse(rid)
		require.NoError(t, err)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("caller id honored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(KeyRequestID, "rid-from-caller")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-from-caller", w.Header().Get(KeyRequestID))
		assert.Equal(t, "rid-from-caller", w.Body.String())
	})
}
