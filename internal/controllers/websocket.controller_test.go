package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hwpanel/internal/services"
)

func TestWebSocketHandlerHonorsAuthSetting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	services.InitAuthService("websocket-test-secret-0123456789abcdef", time.Hour)

	r := gin.New()
	r.GET("/ws", WebSocketHandler(true))
	r.GET("/ws-open", WebSocketHandler(false))

	// Auth on, no token: rejected before the upgrade.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Auth on, junk token: rejected.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token=junk", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Auth off: the request reaches the upgrade, which fails only because
	// this is not a websocket handshake.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws-open", nil))
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
