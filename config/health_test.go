package config

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct{ err error }

func (f fakeDB) PingContext(_ context.Context) error { return f.err }

type fakeAMQP struct{ closed bool }

func (f fakeAMQP) IsClosed() bool { return f.closed }

type fakeMQTT struct{ connected bool }

func (f fakeMQTT) IsConnected() bool { return f.connected }

func serveHealth(h *HealthChecker, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.Register(r)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth_Live(t *testing.T) {
	h := &HealthChecker{db: fakeDB{err: errors.New("down")}, amqpConn: fakeAMQP{closed: true}, mqtt: fakeMQTT{}}

	w := serveHealth(h, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthz_AllUp(t *testing.T) {
	h := &HealthChecker{db: fakeDB{}, amqpConn: fakeAMQP{}, mqtt: fakeMQTT{connected: true}}

	w := serveHealth(h, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHealthz_DependencyDown(t *testing.T) {
	h := &HealthChecker{db: fakeDB{}, amqpConn: fakeAMQP{closed: true}, mqtt: fakeMQTT{connected: true}}

	w := serveHealth(h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status       string                       `json:"status"`
		Dependencies map[string]map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "down", body.Dependencies["rabbitmq"]["status"])
	assert.Equal(t, "up", body.Dependencies["postgres"]["status"])
}
