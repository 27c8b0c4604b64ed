package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/logger"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/altechdata/postcode-api/internal/repository"
	"github.com/altechdata/postcode-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRepository struct {
	mu      sync.Mutex
	rows    map[string][]models.PostcodeRecord
	fault   error
	pingErr error
	queries int
}

func (r *stubRepository) Session(context.Context) (repository.Session, error) {
	return stubSession{r}, nil
}
func (r *stubRepository) Ping(context.Context) error { return r.pingErr }
func (r *stubRepository) Close() error               { return nil }

type stubSession struct{ r *stubRepository }

func (s stubSession) FindByPostcode(_ context.Context, code string) ([]models.PostcodeRecord, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	s.r.queries++
	if s.r.fault != nil {
		return nil, s.r.fault
	}
	return s.r.rows[code], nil
}
func (s stubSession) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Environment: "test"},
		Security: config.SecurityConfig{
			RateLimit: config.RateLimitConfig{RequestsPerMinute: 6000, BurstSize: 100},
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
			},
		},
	}
}

func newTestServer(t *testing.T) (*Server, *stubRepository) {
	t.Helper()

	repo := &stubRepository{rows: map[string][]models.PostcodeRecord{
		"2000": {{Postcode: "2000", Locality: "SYDNEY", State: "NSW"}},
	}}
	log := logger.Discard()
	cfg := testConfig()
	server := NewServer(cfg, log, services.NewContainerWithRepository(cfg, log, repo))
	t.Cleanup(server.Close)
	return server, repo
}

func do(s *Server, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

const scenarioBody = `{
	"2000": [{"Postcode": "2000", "Locality": "SYDNEY", "State": "NSW"}],
	"abcd": {"error": "Invalid postcode: abcd. Please enter a 4-digit numeric value."},
	"9999": {"error": "404, Postcode 9999 not found in the database"}
}`

func TestLookupJSON(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "2000,abcd,9999"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, scenarioBody, w.Body.String())

	// keys follow input order
	body := w.Body.String()
	assert.Less(t, strings.Index(body, `"2000"`), strings.Index(body, `"abcd"`))
	assert.Less(t, strings.Index(body, `"abcd"`), strings.Index(body, `"9999"`))
}

func TestLookupForm(t *testing.T) {
	s, _ := newTestServer(t)

	form := url.Values{"postcodes": {"2000,abcd,9999"}}
	w := do(s, http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, scenarioBody, w.Body.String())
}

func TestLookupTooManyPostcodes(t *testing.T) {
	s, repo := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "1,2,3,4,5,6"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "You entered more than 5 postcodes."}`, w.Body.String())
	assert.Zero(t, repo.queries)

	form := url.Values{"postcodes": {"2000,2000,2000,2000,2000,2000"}}
	w = do(s, http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repo.queries)
}

func TestLookupRepositoryFault(t *testing.T) {
	s, repo := newTestServer(t)
	repo.fault = errors.New("could not connect to server: Connection refused")

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "2000"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "could not connect to server: Connection refused"}`, w.Body.String())
}

func TestLookupMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": 2000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupMissingFieldIsBlankToken(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"": {"error": "Invalid postcode: . Please enter a 4-digit numeric value."}}`, w.Body.String())

	w = do(s, http.MethodPost, "/", "application/x-www-form-urlencoded", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"": {"error": "Invalid postcode: . Please enter a 4-digit numeric value."}}`, w.Body.String())
}

func TestLookupDuplicateTokens(t *testing.T) {
	s, repo := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "2000, 2000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"2000": [{"Postcode": "2000", "Locality": "SYDNEY", "State": "NSW"}]}`, w.Body.String())
	assert.Equal(t, 2, repo.queries)
}

func TestHello(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/hello", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Postcode API!", w.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	s, repo := newTestServer(t)

	w := do(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = do(s, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	repo.pingErr = errors.New("database is down")
	w = do(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(s, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database is unreachable")
}

func TestMetricsCountOutcomes(t *testing.T) {
	s, _ := newTestServer(t)

	do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "2000,abcd,9999"}`)
	do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "1,2,3,4,5,6"}`)

	snap := s.metrics.Snapshot()
	assert.Equal(t, int64(2), snap.Requests.Total)
	assert.Equal(t, int64(1), snap.Requests.Success)
	assert.Equal(t, int64(1), snap.Requests.Rejected)
	assert.Equal(t, int64(1), snap.Lookups.Matched)
	assert.Equal(t, int64(2), snap.Lookups.Failed)

	w := do(s, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		RateLimit map[string]interface{} `json:"rate_limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body.RateLimit["active_clients"])
	assert.Equal(t, float64(6000), body.RateLimit["requests_per_minute"])
	assert.Equal(t, false, body.RateLimit["shared"])
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(s, http.MethodGet, "/postcodes", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRequestIDHeaderOnResponses(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodPost, "/postcodes", "application/json", `{"postcodes": "2000"}`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
