package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claus-risk-server/internal/cache"
	"github.com/claus-risk-server/internal/domain"
	"github.com/claus-risk-server/internal/repository"
	"github.com/claus-risk-server/internal/service"
	"github.com/claus-risk-server/internal/tables"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	provider, err := tables.NewProvider()
	require.NoError(t, err)
	clausTables, err := provider.Tables()
	require.NoError(t, err)

	store, err := repository.NewSQLiteStore(filepath.Join(t.TempDir(), "assessments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	resultCache, err := cache.NewMemoryCache(100, time.Minute)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &domain.Config{
		Server:  domain.ServerConfig{Host: "127.0.0.1", Port: 0},
		Logging: domain.LoggingConfig{Level: "error", Format: "json"},
		RateLimit: domain.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}

	calculator := service.NewClausCalculator(logger, clausTables)
	riskService := service.NewRiskService(logger, calculator, store, resultCache)

	return NewServer(cfg, logger, riskService)
}

func doRequest(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "claus", body["model"])
}

func TestServer_ClausRisk(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/risk/claus", map[string]any{
		"patient_age":      40,
		"mother_onset_age": 45,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var assessment domain.RiskAssessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))

	assert.NotEmpty(t, assessment.ID)
	assert.True(t, assessment.Applicable)
	require.NotNil(t, assessment.Risk)
	assert.InDelta(t, 0.124, *assessment.Risk, 1e-9)

	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_ClausRisk_NotApplicable(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Patient too old", map[string]any{"patient_age": 85, "mother_onset_age": 45}},
		{"No relatives", map[string]any{"patient_age": 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, http.MethodPost, "/api/v1/risk/claus", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var assessment domain.RiskAssessment
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))
			assert.False(t, assessment.Applicable)
			assert.Nil(t, assessment.Risk)
		})
	}
}

func TestServer_ClausRisk_InvalidBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/claus",
		bytes.NewBufferString(`{"patient_age": "forty"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrCodeInvalidInput, apiErr.Code)
}

func TestServer_GetAssessment(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/risk/claus", map[string]any{
		"patient_age":              50,
		"mother_onset_age":         40,
		"maternal_aunt_onset_ages": []int{35},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.RiskAssessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(t, server, http.MethodGet, "/api/v1/assessments/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.RiskAssessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Risk)
	assert.InDelta(t, 0.199, *got.Risk, 1e-9)
}

func TestServer_GetAssessment_NotFound(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/assessments/no-such-id", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrCodeNotFound, apiErr.Code)
}

func TestServer_ListAssessments(t *testing.T) {
	server := newTestServer(t)

	for _, age := range []int{35, 45, 55} {
		rec := doRequest(t, server, http.MethodPost, "/api/v1/risk/claus", map[string]any{
			"patient_age":      age,
			"mother_onset_age": 45,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(t, server, http.MethodGet, "/api/v1/assessments?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Assessments []domain.RiskAssessment `json:"assessments"`
		Count       int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Assessments, 2)
}

func TestServer_ListAssessments_InvalidLimit(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/assessments?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
