package dsl

import (
	"errors"
	"fmt"
	"maps"

	"github.com/aretw0/bemjson/pkg/codec"
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/engine"
	"github.com/aretw0/bemjson/pkg/registry"
)

// ErrInvalidRule is returned when a rule cannot be compiled.
var ErrInvalidRule = errors.New("invalid rule")

// Rule is one declarative transformation.
type Rule struct {
	Block string `json:"block" yaml:"block" mapstructure:"block"`

	// Elem scopes the rule to elements of Block: empty targets the block root,
	// "*" every element, anything else the element of that name.
	Elem string `json:"elem,omitempty" yaml:"elem,omitempty" mapstructure:"elem"`

	ModName string `json:"modName,omitempty" yaml:"modName,omitempty" mapstructure:"modName"`
	ModVal  string `json:"modVal,omitempty" yaml:"modVal,omitempty" mapstructure:"modVal"`

	Actions `yaml:",inline" mapstructure:",squash"`
}

// Actions lists what a rule does to a matching node. They run in field order;
// unset actions are skipped.
type Actions struct {
	Tunnel          map[string]any    `json:"tunnel,omitempty" yaml:"tunnel,omitempty" mapstructure:"tunnel"`
	Mods            map[string]string `json:"mods,omitempty" yaml:"mods,omitempty" mapstructure:"mods"`
	Attrs           map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" mapstructure:"attrs"`
	AttrsFromTunnel map[string]string `json:"attrsFromTunnel,omitempty" yaml:"attrsFromTunnel,omitempty" mapstructure:"attrsFromTunnel"`
	Tag             string            `json:"tag,omitempty" yaml:"tag,omitempty" mapstructure:"tag"`
	Cls             string            `json:"cls,omitempty" yaml:"cls,omitempty" mapstructure:"cls"`
	JS              any               `json:"js,omitempty" yaml:"js,omitempty" mapstructure:"js"`
	Mix             any               `json:"mix,omitempty" yaml:"mix,omitempty" mapstructure:"mix"`
	Content         any               `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`
	WrapContent     any               `json:"wrapContent,omitempty" yaml:"wrapContent,omitempty" mapstructure:"wrapContent"`
	BeforeContent   any               `json:"beforeContent,omitempty" yaml:"beforeContent,omitempty" mapstructure:"beforeContent"`
	AfterContent    any               `json:"afterContent,omitempty" yaml:"afterContent,omitempty" mapstructure:"afterContent"`

	// IDAttr names an attribute that receives a generated identifier.
	IDAttr string `json:"idAttr,omitempty" yaml:"idAttr,omitempty" mapstructure:"idAttr"`

	Wrap   any  `json:"wrap,omitempty" yaml:"wrap,omitempty" mapstructure:"wrap"`
	Force  bool `json:"force,omitempty" yaml:"force,omitempty" mapstructure:"force"`
	Remove bool `json:"remove,omitempty" yaml:"remove,omitempty" mapstructure:"remove"`
	Stop   bool `json:"stop,omitempty" yaml:"stop,omitempty" mapstructure:"stop"`
}

// Descriptor returns the registry descriptor of the rule.
func (r Rule) Descriptor() registry.Descriptor {
	return registry.Descriptor{Name: r.Block, ModName: r.ModName, ModVal: r.ModVal}
}

// Declaration compiles the rule into an engine declaration.
func (r Rule) Declaration() (engine.Declaration, error) {
	if r.Block == "" {
		return engine.Declaration{}, fmt.Errorf("%w: block is required", ErrInvalidRule)
	}
	p, err := compile(r)
	if err != nil {
		return engine.Declaration{}, fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.Descriptor(), err)
	}

	d := engine.Declaration{Descriptor: r.Descriptor()}
	switch r.Elem {
	case "":
		d.OnBlock = p.apply
	case registry.Wildcard:
		d.OnElem = p.apply
	default:
		d.OnElems = map[string]engine.Handler{r.Elem: p.apply}
	}
	return d, nil
}

// program is a rule with its node templates decoded once.
type program struct {
	Actions
	mix, content, before, after, wrap domain.Node
	wrapContent                       *domain.Component
}

func compile(r Rule) (*program, error) {
	p := &program{Actions: r.Actions}
	var err error
	for _, t := range []struct {
		name string
		raw  any
		dst  *domain.Node
	}{
		{"mix", r.Mix, &p.mix},
		{"content", r.Content, &p.content},
		{"beforeContent", r.BeforeContent, &p.before},
		{"afterContent", r.AfterContent, &p.after},
		{"wrap", r.Wrap, &p.wrap},
	} {
		if *t.dst, err = template(t.raw); err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
	}

	wc, err := template(r.WrapContent)
	if err != nil {
		return nil, fmt.Errorf("wrapContent: %w", err)
	}
	if wc != nil {
		comp, ok := wc.(*domain.Component)
		if !ok {
			return nil, fmt.Errorf("wrapContent: expected an object, got %s", wc.Kind())
		}
		p.wrapContent = comp
	}
	return p, nil
}

// template decodes a raw template value. Nodes are accepted as they are.
func template(raw any) (domain.Node, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case domain.Node:
		return domain.Clone(v), nil
	default:
		return codec.Decode(v)
	}
}

// fresh returns a private copy of a template, or nil.
func fresh(n domain.Node) domain.Node {
	if n == nil {
		return nil
	}
	return domain.Clone(n)
}

func (p *program) apply(c *engine.Context, _ *engine.Declaration) {
	for k, v := range p.Tunnel {
		c.SetTunneled(k, copyValue(v))
	}
	if len(p.Mods) > 0 {
		c.SetMods(p.Mods, p.Force)
	}
	if len(p.Attrs) > 0 {
		c.SetAttrs(p.Attrs, p.Force)
	}
	for attr, key := range p.AttrsFromTunnel {
		if s, ok := domain.ScalarString(c.Tunneled(key)); ok {
			c.SetAttr(attr, s, p.Force)
		}
	}
	if p.Tag != "" {
		c.SetTag(p.Tag, p.Force)
	}
	if p.Cls != "" {
		c.SetCls(p.Cls, p.Force)
	}
	if p.JS != nil {
		c.SetJS(copyValue(p.JS))
	}
	if p.mix != nil {
		c.SetMix(fresh(p.mix), p.Force)
	}
	if p.content != nil {
		c.SetContent(fresh(p.content), p.Force)
	}
	if p.wrapContent != nil {
		c.WrapContent(p.wrapContent.Clone())
	}
	if p.before != nil {
		c.BeforeContent(fresh(p.before))
	}
	if p.after != nil {
		c.AfterContent(fresh(p.after))
	}
	if p.IDAttr != "" {
		if _, ok := c.Attrs()[p.IDAttr]; !ok || p.Force {
			c.SetAttr(p.IDAttr, c.GenerateID(), true)
		}
	}
	if p.wrap != nil {
		c.Wrap(fresh(p.wrap))
	}
	if p.Remove {
		c.Remove()
	}
	if p.Stop {
		c.Stop()
	}
}

// copyValue deep-copies the maps and slices of a decoded value.
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := maps.Clone(val)
		for k, item := range out {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
