package bemjson

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/bemjson/pkg/codec"
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/dsl"
	"github.com/aretw0/bemjson/pkg/engine"
	"github.com/aretw0/bemjson/pkg/identity"
	"github.com/aretw0/bemjson/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// Version of the bemjson library and CLI.
const Version = "0.3.0"

type (
	Node        = domain.Node
	Component   = domain.Component
	Context     = engine.Context
	Handler     = engine.Handler
	Declaration = engine.Declaration
)

// Engine is the high-level entry point for the library.
// It owns a declaration registry and builds trees against it.
type Engine struct {
	builder  *engine.Builder
	registry *engine.Registry
	ids      identity.Generator
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithIdentifier sets the generator behind Context.GenerateID.
func WithIdentifier(g identity.Generator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithRegistry shares a declaration registry between engines.
func WithRegistry(r *engine.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls chain the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = domain.ChainHooks(e.hooks, hooks)
	}
}

// WithMetrics records build metrics into collectors registered with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metrics = observability.NewMetrics(reg)
		e.hooks = domain.ChainHooks(e.hooks, e.metrics.Hooks())
	}
}

// New initializes an Engine with an empty registry unless WithRegistry is given.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if e.registry == nil {
		e.registry = engine.NewRegistry()
	}

	e.builder = engine.New(
		engine.WithRegistry(e.registry),
		engine.WithIdentifier(e.ids),
		engine.WithLifecycleHooks(e.hooks),
		engine.WithLogger(e.logger),
	)
	return e
}

// Decl registers handlers for desc: a block name, a registry.Descriptor or a map
// with name, modName and modVal keys.
func (e *Engine) Decl(desc any, d Declaration) error {
	return e.builder.Decl(desc, d)
}

// Register stores a declaration whose descriptor is already set.
func (e *Engine) Register(d Declaration) {
	e.builder.Register(d)
}

// LoadRules reads a YAML or JSON rule file and registers its rules.
func (e *Engine) LoadRules(path string) error {
	f, err := dsl.Load(path)
	if err != nil {
		return err
	}
	if err := f.Apply(e.builder); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debug("rules loaded", "path", path, "rules", len(f.Rules))
	return nil
}

// Build transforms a copy of tree. The result is domain.Absent when the root was removed.
func (e *Engine) Build(tree Node) Node {
	return e.builder.Build(tree)
}

// BuildJSON decodes a JSON tree, builds it and encodes the result.
func (e *Engine) BuildJSON(data []byte, pretty bool) ([]byte, error) {
	tree, err := codec.UnmarshalJSON(data)
	if err != nil {
		return nil, err
	}
	return codec.MarshalJSON(e.Build(tree), pretty)
}

// BuildYAML decodes a YAML tree, builds it and encodes the result as YAML.
func (e *Engine) BuildYAML(data []byte) ([]byte, error) {
	tree, err := codec.UnmarshalYAML(data)
	if err != nil {
		return nil, err
	}
	return codec.MarshalYAML(e.Build(tree))
}

// Blocks lists the block names with at least one declaration.
func (e *Engine) Blocks() []string {
	return e.registry.Blocks()
}

// Registry returns the declaration registry of the engine.
func (e *Engine) Registry() *engine.Registry {
	return e.registry
}
