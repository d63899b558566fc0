package echolog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mechiko/iccinspect/internal/echolog"
)

func TestLoggerRecordsRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	e := echo.New()
	e.Use(echolog.Logger(log))
	e.GET("/hello", func(c echo.Context) error {
		return c.String(http.StatusOK, "hi")
	})

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, logs.All(), 1)

	entry := logs.All()[0]
	require.Equal(t, "served", entry.Message)
	ctx := entry.ContextMap()
	require.Equal(t, "GET", ctx["method"])
	require.EqualValues(t, http.StatusOK, ctx["status"])
}

func TestLoggerLogsErrorLevelOnServerError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	e := echo.New()
	e.Use(echolog.Logger(log))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Len(t, logs.All(), 1)
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestRecoverTurnsPanicIntoLoggedResponse(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	e := echo.New()
	e.Use(echolog.Recover(log))
	e.GET("/panics", func(c echo.Context) error {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, logs.All(), 1)
	require.Equal(t, "recovered", logs.All()[0].Message)
}
