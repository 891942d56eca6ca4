package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/devfolio-backend/pkg/config"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func healthConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)

	HealthLive(healthConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Devfolio-Env"))
}

func TestHealthReadyAllUp(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(healthConfig(), nil, &fakePinger{}, &fakePinger{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthReadySkipsNilRedis(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(healthConfig(), nil, &fakePinger{}, nil)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthReadyDBDown(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(healthConfig(), nil, &fakePinger{err: errors.New("conn refused")}, nil)(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthReadyRedisDown(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	HealthReady(healthConfig(), nil, &fakePinger{}, &fakePinger{err: errors.New("conn refused")})(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
