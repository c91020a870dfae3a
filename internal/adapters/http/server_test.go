package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/bemjson/pkg/engine"
	"github.com/aretw0/bemjson/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builderEngine adapts an engine.Builder to the Engine interface.
type builderEngine struct {
	*engine.Builder
}

func (b builderEngine) Blocks() []string { return b.Registry().Blocks() }

func newTestEngine(t *testing.T, opts ...engine.Option) Engine {
	t.Helper()
	b := engine.New(opts...)
	require.NoError(t, b.Decl("link", engine.Declaration{
		OnBlock: func(c *engine.Context, _ *engine.Declaration) {
			c.SetTag("a", false).SetAttr("href", "#", false)
		},
	}))
	return builderEngine{b}
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(newTestEngine(t), WithVersion("1.2.3"))

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		App     string   `json:"app"`
		Version string   `json:"version"`
		Blocks  []string `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bemjson-http", resp.App)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, []string{"link"}, resp.Blocks)
}

func TestPostBuild(t *testing.T) {
	handler := NewHandler(newTestEngine(t))

	tests := []struct {
		name        string
		body        string
		contentType string
		accept      string
		query       string
		wantStatus  int
		wantBody    string
		wantType    string
	}{
		{
			name:       "json in json out",
			body:       `[{"block":"link","content":"home"},"text"]`,
			wantStatus: http.StatusOK,
			wantBody:   `[{"attrs":{"href":"#"},"block":"link","content":"home","tag":"a"},"text"]`,
			wantType:   "application/json",
		},
		{
			name:        "yaml in yaml out",
			body:        "block: link\nattrs:\n  href: /about\n",
			contentType: "application/yaml",
			accept:      "application/yaml",
			wantStatus:  http.StatusOK,
			wantBody:    "attrs:\n    href: /about\nblock: link\ntag: a\n",
			wantType:    "application/yaml",
		},
		{
			name:       "pretty json",
			body:       `{"block":"other"}`,
			query:      "?pretty=true",
			wantStatus: http.StatusOK,
			wantBody:   "{\n  \"block\": \"other\"\n}",
			wantType:   "application/json",
		},
		{
			name:       "malformed json",
			body:       `{"block":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed node",
			body:       `{"block":"link","mods":"dark"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/build"+tt.query, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestPostBuild_BodyTooLarge(t *testing.T) {
	handler := NewHandler(newTestEngine(t), WithMaxBodySize(8))

	req := httptest.NewRequest(http.MethodPost, "/build", strings.NewReader(`{"block":"link"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestPostBuild_NoEngine(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/build", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	handler := NewHandler(newTestEngine(t, engine.WithLifecycleHooks(m.Hooks())), WithGatherer(reg))

	req := httptest.NewRequest(http.MethodPost, "/build", strings.NewReader(`{"block":"link"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bemjson_builds_total 1")
	assert.Contains(t, rr.Body.String(), `bemjson_nodes_total{block="link"} 1`)

	// Without a gatherer the route does not exist.
	rr = httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/build", nil)
	rr := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
