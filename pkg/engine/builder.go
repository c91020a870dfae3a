package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/identity"
	"github.com/aretw0/bemjson/pkg/registry"
)

// Builder applies registered declarations to node trees.
// Register everything before building; Build itself never mutates the registry
// and may be called concurrently on independent trees.
type Builder struct {
	registry *Registry
	ids      identity.Generator
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Builder.
type Option func(*Builder)

// WithRegistry shares an existing declaration registry.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithIdentifier replaces the process-wide id counter used by Context.GenerateID.
func WithIdentifier(g identity.Generator) Option {
	return func(b *Builder) {
		b.ids = g
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *Builder) {
		b.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a Builder. Without options it owns an empty registry, uses the
// process-wide identity counter and discards logs.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = NewRegistry()
	}
	if b.ids == nil {
		b.ids = identity.Default()
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return b
}

// Registry returns the declaration registry of the builder.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// Decl registers handlers for desc, which is a block name, a registry.Descriptor
// or a map with name/modName/modVal keys. The descriptor of d is overwritten.
func (b *Builder) Decl(desc any, d Declaration) error {
	parsed, err := registry.ParseDescriptor(desc)
	if err != nil {
		return err
	}
	d.Descriptor = parsed
	b.Register(d)
	return nil
}

// Register stores the handlers of d, each in front of its chain.
// A declaration without handlers is a no-op.
func (b *Builder) Register(d Declaration) {
	if d.Empty() || d.Name == "" {
		return
	}
	decl := &d

	if d.OnBlock != nil {
		b.registry.RegisterBlock(d.Descriptor, Binding{Handler: d.OnBlock, Decl: decl})
		b.logger.Debug("declaration registered", "decl", d.Descriptor.String(), "scope", "block")
	}
	for elem, h := range d.OnElems {
		if h == nil {
			continue
		}
		b.registry.RegisterElem(d.Descriptor, elem, Binding{Handler: h, Decl: decl})
		b.logger.Debug("declaration registered", "decl", d.Descriptor.String(), "scope", "elem", "elem", elem)
	}
	if d.OnElem != nil {
		b.registry.RegisterElem(d.Descriptor, registry.Wildcard, Binding{Handler: d.OnElem, Decl: decl})
		b.logger.Debug("declaration registered", "decl", d.Descriptor.String(), "scope", "elem", "elem", registry.Wildcard)
	}
}

// Build applies the declarations to a deep copy of tree and returns the result.
// The input tree is never modified. A removed root builds into domain.Absent.
func (b *Builder) Build(tree domain.Node) domain.Node {
	start := time.Now()

	root := b.newContext(domain.Clone(tree), 1, 1, nil, nil)
	out := root.Build()

	elapsed := time.Since(start)
	b.logger.Debug("build finished", "duration", elapsed)
	if b.hooks.OnBuild != nil {
		b.hooks.OnBuild(&domain.BuildEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventBuild},
			Duration:  elapsed,
		})
	}
	return out
}

// newContext wraps node. A component declaring a block and no explicit governor
// governs itself.
func (b *Builder) newContext(node domain.Node, pos, siblings int, gov *domain.Component, tunneled map[string]any) *Context {
	if comp, ok := node.(*domain.Component); ok && comp != nil && comp.Block != "" && gov == nil {
		gov = comp
	}
	return &Context{
		builder:  b,
		node:     node,
		pos:      pos,
		siblings: siblings,
		block:    gov,
		tunneled: tunneled,
	}
}
