package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/meera/wardrobe-stylist/internal/server/ratelimit"
)

// newValidationServer builds a Server with only the pieces validation-path
// handlers touch. Handlers that reach storage or the model are covered by the
// integration tests.
func newValidationServer() *Server {
	return &Server{validator: validator.New()}
}

func TestHandleCreateProfile_RejectsBadJSON(t *testing.T) {
	s := newValidationServer()
	req := httptest.NewRequest("POST", "/profiles", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	s.handleCreateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleCreateProfile_RejectsMissingName(t *testing.T) {
	s := newValidationServer()
	req := httptest.NewRequest("POST", "/profiles", strings.NewReader(`{"name":""}`))
	rec := httptest.NewRecorder()

	s.handleCreateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestHandleDeleteProfile_RejectsBadID(t *testing.T) {
	s := newValidationServer()
	req := httptest.NewRequest("DELETE", "/profiles/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	s.handleDeleteProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStyle_RejectsMissingOccasion(t *testing.T) {
	s := newValidationServer()
	body := `{"profile_id":"7b5e2bb1-30a3-4a8c-9c5a-8f2f4f1a2b3c","occasion":""}`
	req := httptest.NewRequest("POST", "/style", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleStyle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Occasion")
}

func TestHandleStyle_RejectsMissingProfileID(t *testing.T) {
	s := newValidationServer()
	req := httptest.NewRequest("POST", "/style", strings.NewReader(`{"occasion":"office"}`))
	rec := httptest.NewRecorder()

	s.handleStyle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSaveFavorite_RejectsEmptyItems(t *testing.T) {
	s := newValidationServer()
	body := `{"profile_id":"7b5e2bb1-30a3-4a8c-9c5a-8f2f4f1a2b3c","occasion":"office","items":[]}`
	req := httptest.NewRequest("POST", "/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleSaveFavorite(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Items")
}

func TestHandleAnalyzeItem_RequiresImage(t *testing.T) {
	s := newValidationServer()

	var buf bytes.Buffer
	req := httptest.NewRequest("POST", "/items/analyze", &buf)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rec := httptest.NewRecorder()

	s.handleAnalyzeItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateItem_RejectsMissingProfileID(t *testing.T) {
	s := newValidationServer()

	var buf bytes.Buffer
	req := httptest.NewRequest("POST", "/items", &buf)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rec := httptest.NewRecorder()

	s.handleCreateItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newValidationServer()
	rec := httptest.NewRecorder()

	s.handleHealth(rec, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWithCORS_AllowsConfiguredOrigin(t *testing.T) {
	s := newValidationServer()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := s.withCORS(next, []string{"http://localhost:3000"})

	req := httptest.NewRequest("GET", "/profiles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/profiles", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_EmptyListAllowsAny(t *testing.T) {
	s := newValidationServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}), nil)

	req := httptest.NewRequest("OPTIONS", "/style", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithRateLimit_Returns429WhenExhausted(t *testing.T) {
	s := newValidationServer()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:   true,
		Whitelist: map[string]bool{},
		Blacklist: map[string]bool{},
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/style", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer s.rateLimiter.Stop()

	handler := s.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/style", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
