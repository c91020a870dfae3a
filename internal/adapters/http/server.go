package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/bemjson/pkg/codec"
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxBodySize bounds POST /build request bodies.
const DefaultMaxBodySize = 4 << 20

// Engine is the part of the build engine served over HTTP.
type Engine interface {
	Build(tree domain.Node) domain.Node
	Blocks() []string
}

// Server serves builds for one engine.
type Server struct {
	Engine      Engine
	Version     string
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
	Tracer      trace.Tracer
	MaxBodySize int64

	router routers.Router
}

// Option configures the Server built by NewHandler.
type Option func(*Server)

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.Version = v }
}

// WithGatherer exposes g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.Gatherer = g }
}

// WithLogger sets the request error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) { s.MaxBodySize = n }
}

// NewHandler creates the HTTP handler for the engine. POST /build is validated
// against the OpenAPI contract served at GET /openapi.yaml.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	router, err := contractRouter()
	if err != nil {
		// The contract is embedded at build time.
		panic(err)
	}
	s := &Server{Engine: engine, MaxBodySize: DefaultMaxBodySize, router: router}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing(s.Tracer))
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.With(s.validateRequest).Post("/build", s.PostBuild)
	r.Get("/openapi.yaml", serveContract)
	r.Get("/swagger", serveSwagger)
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	blocks := []string{}
	if s.Engine != nil {
		blocks = append(blocks, s.Engine.Blocks()...)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "bemjson-http",
		"version": s.Version,
		"blocks":  blocks,
	})
}

// PostBuild handles POST /build. The body is a JSON tree, or YAML when the
// Content-Type says so. The built tree is returned as YAML when the Accept header
// asks for it and as JSON otherwise; ?pretty=true indents JSON.
func (s *Server) PostBuild(w http.ResponseWriter, r *http.Request) {
	if s.Engine == nil {
		http.Error(w, "No engine configured", http.StatusServiceUnavailable)
		return
	}

	var pretty bool
	if err := runtime.BindQueryParameter("form", true, false, "pretty", r.URL.Query(), &pretty); err != nil {
		http.Error(w, "Invalid format for parameter pretty: "+err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var tree domain.Node
	if isYAML(r.Header.Get("Content-Type")) {
		tree, err = codec.UnmarshalYAML(body)
	} else {
		tree, err = codec.UnmarshalJSON(body)
	}
	if err != nil {
		s.Logger.Warn("build: invalid request body", "error", err)
		http.Error(w, "Invalid tree: "+err.Error(), http.StatusBadRequest)
		return
	}

	out := s.Engine.Build(tree)
	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.Int("bemjson.request_bytes", len(body)),
		attribute.String("bemjson.result_kind", resultKind(out)),
	)

	if isYAML(r.Header.Get("Accept")) {
		data, err := codec.MarshalYAML(out)
		if err != nil {
			s.fail(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(data)
		return
	}

	data, err := codec.MarshalJSON(out, pretty)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	s.Logger.Error("build: encode failed", "error", err)
	http.Error(w, "Failed to encode result", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func resultKind(n domain.Node) string {
	if n == nil {
		return "Undefined"
	}
	return n.Kind().String()
}

func isYAML(mediaType string) bool {
	return strings.Contains(mediaType, "yaml")
}
