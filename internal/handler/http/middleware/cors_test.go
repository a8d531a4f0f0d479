package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCORSLogger records the calls it receives.
type mockCORSLogger struct {
	infoCount  int
	warnCount  int
	debugCount int
	lastMsg    string
	lastFields map[string]interface{}
}

func (m *mockCORSLogger) Info(msg string, fields map[string]interface{}) {
	m.infoCount++
	m.lastMsg = msg
	m.lastFields = fields
}

func (m *mockCORSLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnCount++
	m.lastMsg = msg
	m.lastFields = fields
}

func (m *mockCORSLogger) Debug(msg string, fields map[string]interface{}) {
	m.debugCount++
	m.lastMsg = msg
	m.lastFields = fields
}

type nextRecorder struct {
	called bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n.called = true
		w.WriteHeader(http.StatusOK)
	})
}

func testConfig(v OriginValidator, logger CORSLogger) CORSConfig {
	return CORSConfig{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         3600,
		Validator:      v,
		Logger:         logger,
	}
}

func TestCORS_PreflightRequest_AllowedOrigin(t *testing.T) {
	logger := &mockCORSLogger{}
	next := &nextRecorder{}
	h := CORS(testConfig(NewWhitelistValidator([]string{"https://app.example.com"}), logger))(next.handler())

	req := httptest.NewRequest(http.MethodOptions, "/resumir", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.False(t, next.called)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Request-ID", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rr.Header().Get("Access-Control-Max-Age"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, 1, logger.debugCount)
	assert.Equal(t, "POST", logger.lastFields["requested_method"])
}

func TestCORS_PreflightRequest_DisallowedOrigin(t *testing.T) {
	logger := &mockCORSLogger{}
	next := &nextRecorder{}
	h := CORS(testConfig(NewWhitelistValidator([]string{"https://app.example.com"}), logger))(next.handler())

	req := httptest.NewRequest(http.MethodOptions, "/resumir", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, next.called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, 1, logger.warnCount)
	assert.Equal(t, "https://evil.example.com", logger.lastFields["origin"])
}

func TestCORS_ActualRequest_AnyOrigin(t *testing.T) {
	next := &nextRecorder{}
	h := CORS(testConfig(AnyOriginValidator{}, nil))(next.handler())

	req := httptest.NewRequest(http.MethodPost, "/resumir", nil)
	req.Header.Set("Origin", "https://whatever.dev")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, next.called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://whatever.dev", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_AllowCredentials(t *testing.T) {
	cfg := testConfig(AnyOriginValidator{}, nil)
	cfg.AllowCredentials = true
	h := CORS(cfg)((&nextRecorder{}).handler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_SameOriginRequest_NoOriginHeader(t *testing.T) {
	logger := &mockCORSLogger{}
	next := &nextRecorder{}
	h := CORS(testConfig(AnyOriginValidator{}, logger))(next.handler())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/resumir", nil))

	assert.True(t, next.called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Vary"))
	assert.Zero(t, logger.debugCount+logger.warnCount+logger.infoCount)
}

func TestCORS_NoLogger(t *testing.T) {
	h := CORS(testConfig(NewWhitelistValidator([]string{"https://a.example"}), nil))((&nextRecorder{}).handler())

	for _, origin := range []string{"https://a.example", "https://b.example"} {
		for _, method := range []string{http.MethodGet, http.MethodOptions} {
			req := httptest.NewRequest(method, "/", nil)
			req.Header.Set("Origin", origin)
			require.NotPanics(t, func() { h.ServeHTTP(httptest.NewRecorder(), req) })
		}
	}
}

func TestCORS_NoDuplicateHeaders(t *testing.T) {
	h := CORS(testConfig(AnyOriginValidator{}, nil))((&nextRecorder{}).handler())

	req := httptest.NewRequest(http.MethodOptions, "/resumir", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Len(t, rr.Header().Values("Access-Control-Allow-Origin"), 1)
	assert.Len(t, rr.Header().Values("Access-Control-Allow-Methods"), 1)
}
