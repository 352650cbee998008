package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	engine.POST("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestCORS(t *testing.T) {
	t.Run("sets headers on regular responses", func(t *testing.T) {
		engine := newEngine(CORS())

		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,OPTIONS,PATCH,DELETE,POST,PUT", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t,
			"X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version",
			w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("answers OPTIONS with empty 200 before routing", func(t *testing.T) {
		engine := newEngine(CORS())

		req := httptest.NewRequest(http.MethodOptions, "/anything/at/all", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("honors custom config", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigin = "https://shop.example.com"
		cfg.AllowCredentials = false
		engine := newEngine(CORSWithConfig(cfg))

		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		engine := newEngine(RequestID())

		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("echoes client-provided id", func(t *testing.T) {
		engine := newEngine(RequestID())

		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		req.Header.Set(RequestIDHeader, "client-id-42")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "client-id-42", w.Header().Get(RequestIDHeader))
	})
}

func TestBodyLimit(t *testing.T) {
	t.Run("rejects oversized declared bodies", func(t *testing.T) {
		engine := newEngine(BodyLimit(16))

		req := httptest.NewRequest(http.MethodPost, "/echo",
			bytes.NewReader([]byte(strings.Repeat("x", 64))))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"ok":false,"message":"Request entity too large"}`, w.Body.String())
	})

	t.Run("passes small bodies through", func(t *testing.T) {
		engine := newEngine(BodyLimit(1 << 20))

		req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("tiny")))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
