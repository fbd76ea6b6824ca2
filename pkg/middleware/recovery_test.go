package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
		wantPanic  bool
	}{
		{
			name: "string panic",
			handler: func(c *gin.Context) {
				panic("db password is hunter2")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server error"}`,
			wantPanic:  true,
		},
		{
			name: "nil pointer dereference",
			handler: func(c *gin.Context) {
				var rec *struct{ Code string }
				c.String(http.StatusOK, rec.Code)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server error"}`,
			wantPanic:  true,
		},
		{
			name: "panic after the response started keeps its status",
			handler: func(c *gin.Context) {
				c.String(http.StatusFound, "")
				panic("late failure")
			},
			wantStatus: http.StatusFound,
			wantPanic:  true,
		},
		{
			name: "normal request",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			router := gin.New()
			router.Use(Recovery())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/test", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "hunter2")
			assert.Equal(t, tt.wantPanic, bytes.Contains(logs.Bytes(), []byte("Panic recovered")))
		})
	}
}

func TestRecovery_LogsRequestContext(t *testing.T) {
	logs := captureLogs(t)

	router := gin.New()
	router.Use(Logger(), Recovery())
	router.POST("/api/links", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/links", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-7", w.Header().Get(RequestIDHeader))

	var entry map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var e map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &e))
		if e["message"] == "Panic recovered" {
			entry = e
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, "/api/links", entry["path"])
	assert.Equal(t, "boom", entry["panic"])
	assert.NotEmpty(t, entry["stack"])
}
