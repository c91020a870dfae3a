package dsl

import (
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/engine"
)

// Builder assembles rules in Go.
type Builder struct {
	rules []*RuleBuilder
}

// New creates an empty rule builder.
func New() *Builder {
	return &Builder{}
}

// Rule starts a new rule for block. Rules are kept in call order.
func (b *Builder) Rule(block string) *RuleBuilder {
	rb := &RuleBuilder{rule: Rule{Block: block}}
	b.rules = append(b.rules, rb)
	return rb
}

// File returns the rules built so far.
func (b *Builder) File() *File {
	f := &File{Rules: make([]Rule, 0, len(b.rules))}
	for _, rb := range b.rules {
		f.Rules = append(f.Rules, rb.rule)
	}
	return f
}

// Build compiles the rules into declarations.
func (b *Builder) Build() ([]engine.Declaration, error) {
	return b.File().Declarations()
}

// Apply compiles the rules and registers them with r.
func (b *Builder) Apply(r Registrar) error {
	return b.File().Apply(r)
}

// RuleBuilder provides a fluent API for configuring a rule.
type RuleBuilder struct {
	rule Rule
}

// Elem scopes the rule to an element of the block; "*" matches every element.
func (r *RuleBuilder) Elem(name string) *RuleBuilder {
	r.rule.Elem = name
	return r
}

// When guards the rule on a block modifier. An empty value matches any set value.
func (r *RuleBuilder) When(modName, modVal string) *RuleBuilder {
	r.rule.ModName = modName
	r.rule.ModVal = modVal
	return r
}

// Tunnel passes a parameter down to descendants.
func (r *RuleBuilder) Tunnel(name string, value any) *RuleBuilder {
	if r.rule.Tunnel == nil {
		r.rule.Tunnel = make(map[string]any)
	}
	r.rule.Tunnel[name] = value
	return r
}

// Mod sets a modifier.
func (r *RuleBuilder) Mod(name, value string) *RuleBuilder {
	if r.rule.Mods == nil {
		r.rule.Mods = make(map[string]string)
	}
	r.rule.Mods[name] = value
	return r
}

// Attr sets an HTML attribute.
func (r *RuleBuilder) Attr(name, value string) *RuleBuilder {
	if r.rule.Attrs == nil {
		r.rule.Attrs = make(map[string]string)
	}
	r.rule.Attrs[name] = value
	return r
}

// AttrFromTunnel sets attribute attr from the tunneled parameter key, when present.
func (r *RuleBuilder) AttrFromTunnel(attr, key string) *RuleBuilder {
	if r.rule.AttrsFromTunnel == nil {
		r.rule.AttrsFromTunnel = make(map[string]string)
	}
	r.rule.AttrsFromTunnel[attr] = key
	return r
}

func (r *RuleBuilder) Tag(tag string) *RuleBuilder {
	r.rule.Tag = tag
	return r
}

func (r *RuleBuilder) Cls(cls string) *RuleBuilder {
	r.rule.Cls = cls
	return r
}

func (r *RuleBuilder) JS(js any) *RuleBuilder {
	r.rule.JS = js
	return r
}

func (r *RuleBuilder) Mix(n domain.Node) *RuleBuilder {
	r.rule.Mix = n
	return r
}

func (r *RuleBuilder) Content(n domain.Node) *RuleBuilder {
	r.rule.Content = n
	return r
}

// WrapContent nests the node content inside w.
func (r *RuleBuilder) WrapContent(w *domain.Component) *RuleBuilder {
	r.rule.WrapContent = w
	return r
}

func (r *RuleBuilder) BeforeContent(n domain.Node) *RuleBuilder {
	r.rule.BeforeContent = n
	return r
}

func (r *RuleBuilder) AfterContent(n domain.Node) *RuleBuilder {
	r.rule.AfterContent = n
	return r
}

// ID stores a generated identifier in attribute attr.
func (r *RuleBuilder) ID(attr string) *RuleBuilder {
	r.rule.IDAttr = attr
	return r
}

// Wrap replaces the whole node with w once the chain is done.
func (r *RuleBuilder) Wrap(w domain.Node) *RuleBuilder {
	r.rule.Wrap = w
	return r
}

// Force lets the rule overwrite values that are already set.
func (r *RuleBuilder) Force() *RuleBuilder {
	r.rule.Force = true
	return r
}

func (r *RuleBuilder) Remove() *RuleBuilder {
	r.rule.Remove = true
	return r
}

// Stop keeps the remaining handlers of the node from running.
func (r *RuleBuilder) Stop() *RuleBuilder {
	r.rule.Stop = true
	return r
}
