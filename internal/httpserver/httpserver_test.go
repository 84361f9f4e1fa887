package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsawler/renumber/internal/response"
)

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.TestMode
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = 1 << 16
	}
	srv, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func renumberBody(t *testing.T, text string) string {
	t.Helper()
	b, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)
	return string(b)
}

func TestNew_Validation(t *testing.T) {
	logger := zap.NewNop()
	valid := Config{Port: 8080, Mode: gin.TestMode, MaxBodyBytes: 1024}

	tests := []struct {
		name   string
		logger *zap.Logger
		mutate func(*Config)
	}{
		{"missing logger", nil, func(*Config) {}},
		{"missing mode", logger, func(c *Config) { c.Mode = "" }},
		{"unknown mode", logger, func(c *Config) { c.Mode = "turbo" }},
		{"missing port", logger, func(c *Config) { c.Port = 0 }},
		{"zero body limit", logger, func(c *Config) { c.MaxBodyBytes = 0 }},
		{"negative rate limit", logger, func(c *Config) { c.RateLimitPerMin = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			_, err := New(tt.logger, cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w, resp := do(t, h, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			data, ok := resp.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, status, data["status"])
			assert.Equal(t, ServiceName, data["service"])
		})
	}
}

func TestRenumber_OK(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	body := renumberBody(t, "Steps:\n7. Open the box.\nThen: Remove the item.\n9: Close the box.")
	w, resp := do(t, h, http.MethodPost, "/v1/renumber", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, response.MessageSuccess, resp.Message)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var data renumberResp
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "Steps:", data.LeadingText)
	assert.Equal(t, []string{"Open the box.", "Remove the item.", "Close the box."}, data.Elements)
	assert.Equal(t, "Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.", data.Output)
	require.Len(t, data.Warnings, 1)
	assert.Equal(t, warningResp{Line: 2, Kind: "prefix-mismatch", Text: "Then: Remove the item."}, data.Warnings[0])
}

func TestRenumber_HTML(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	b, err := json.Marshal(map[string]string{
		"format": "html",
		"text":   `<h2>Steps:</h2><ol><li>Open the box.</li><li>Remove the item.</li><li>Close the box.</li></ol>`,
	})
	require.NoError(t, err)

	w, resp := do(t, h, http.MethodPost, "/v1/renumber", string(b))
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.", data["output"])
}

func TestRenumber_Errors(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"text":`, response.BadRequestCode},
		{"empty text", renumberBody(t, "  \n "), response.BadRequestCode},
		{"unknown format", `{"text":"a","format":"pdf"}`, response.BadRequestCode},
		{"too few lines", renumberBody(t, "Steps:\n1. a\n2. b"), response.TooFewLinesCode},
		{"uncommon pattern", renumberBody(t, "Steps:\n1. a\n2. b\nNoDelimiterHere"), response.UncommonPatternCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(t, h, http.MethodPost, "/v1/renumber", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, resp.ErrorCode)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestRenumber_BodyTooLarge(t *testing.T) {
	h := newTestServer(t, Config{MaxBodyBytes: 64}).Handler()

	w, resp := do(t, h, http.MethodPost, "/v1/renumber", renumberBody(t, strings.Repeat("1. item\n", 50)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, response.PayloadTooLargeCode, resp.ErrorCode)
}

func TestRenumber_RateLimit(t *testing.T) {
	// 10 per minute allows a burst of one.
	h := newTestServer(t, Config{RateLimitPerMin: 10}).Handler()
	body := renumberBody(t, "Steps:\n1. a\n2. b")

	w, _ := do(t, h, http.MethodPost, "/v1/renumber", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := do(t, h, http.MethodPost, "/v1/renumber", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, response.TooManyRequestsCode, resp.ErrorCode)

	// System routes are not limited.
	w, _ = do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_ReusesValidHeader(t *testing.T) {
	h := newTestServer(t, Config{}).Handler()

	const id = "0b6f3a36-93a1-4c52-b1b4-6a0b1e0d7f11"
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl := newRateLimiter(10)

	require.NoError(t, rl.Allow("a"))
	assert.Error(t, rl.Allow("a"))
	assert.NoError(t, rl.Allow("b"))
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10)

	var wg sync.WaitGroup
	var allowed atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("a") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, Config{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	res, err := http.Get(fmt.Sprintf("http://%s/live", ln.Addr()))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}
