package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"mystore/internal/core/apperror"
	appctx "mystore/internal/core/context"
	"mystore/pkg/logger"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Trace(), Logger(logger.Nop()), ErrorHandler(), Recovery())

	r.GET("/app-error", func(c *gin.Context) {
		_ = c.Error(apperror.NewInsufficientStock("p1", 5, 2))
	})
	r.GET("/plain-error", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})
	r.GET("/trace", func(c *gin.Context) {
		c.String(http.StatusOK, appctx.GetRequestID(c.Request.Context()))
	})
	return r
}

func do(t *testing.T, r http.Handler, path string, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestErrorHandler_AppError(t *testing.T) {
	w, body := do(t, newEngine(), "/app-error", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, apperror.CodeInsufficientStock, body["code"])
	details := body["details"].(map[string]any)
	assert.EqualValues(t, 2, details["available"])
}

func TestErrorHandler_UnknownErrorIsHidden(t *testing.T) {
	w, body := do(t, newEngine(), "/plain-error", http.Header{HeaderRequestID: {"req-77"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
	assert.Equal(t, "req-77", body["details"].(map[string]any)["request_id"])
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRecovery_PanicRenderedAsJSON(t *testing.T) {
	w, body := do(t, newEngine(), "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestTrace_PropagatesRequestID(t *testing.T) {
	w, _ := do(t, newEngine(), "/trace", http.Header{HeaderRequestID: {"req-123"}})

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(HeaderTraceID))
}

func TestTrace_GeneratesIDs(t *testing.T) {
	w, _ := do(t, newEngine(), "/trace", nil)

	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

func TestLogger_RequestLoggerInContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Trace(), Logger(log.WithComponent("http")))
	r.GET("/lots", func(c *gin.Context) {
		logger.Info(c.Request.Context(), "listing lots")
		c.Status(http.StatusOK)
	})

	w, _ := do(t, r, "/lots", http.Header{HeaderRequestID: {"req-9"}})
	require.Equal(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("listing lots").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "http", fields["component"])
	assert.Equal(t, "req-9", fields["request_id"])

	assert.Len(t, logs.FilterMessage("http request").All(), 1)
}
