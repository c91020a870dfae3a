package engine

import (
	"maps"

	"github.com/aretw0/bemjson/pkg/domain"
)

// Context is the handle a handler uses to inspect and edit the node being built.
// Setters return the context so calls can be chained.
//
// Unless noted otherwise, a setter with force == false leaves an existing value
// in place. When the wrapped node is not a component, field getters return zero
// values and field setters do nothing.
type Context struct {
	builder  *Builder
	node     domain.Node
	pos      int
	siblings int
	block    *domain.Component
	tunneled map[string]any
	stopped  bool
	removed  bool
}

// Position returns the 1-based position of the node among its siblings.
func (c *Context) Position() int { return c.pos }

// SiblingCount returns the number of nodes in the list holding this node (1 outside lists).
func (c *Context) SiblingCount() int { return c.siblings }

// IsFirst reports whether the node is the first of its siblings.
func (c *Context) IsFirst() bool { return c.pos == 1 }

// IsLast reports whether the node is the last of its siblings.
func (c *Context) IsLast() bool { return c.pos == c.siblings }

// Block returns the governing block of the node, or nil when there is none.
func (c *Context) Block() *domain.Component { return c.block }

// Value returns the wrapped node.
func (c *Context) Value() domain.Node { return c.node }

// SetValue replaces the wrapped node entirely.
func (c *Context) SetValue(n domain.Node) *Context {
	c.node = n
	return c
}

func (c *Context) component() *domain.Component {
	comp, _ := c.node.(*domain.Component)
	return comp
}

// Field returns a named field of the wrapped component: one of the domain.Field*
// keys or any extra field. It returns nil when the field is not set.
func (c *Context) Field(name string) any {
	comp := c.component()
	if comp == nil {
		return nil
	}
	switch name {
	case domain.FieldBlock:
		return nilIfEmpty(comp.Block)
	case domain.FieldElem:
		return nilIfEmpty(comp.Elem)
	case domain.FieldTag:
		return nilIfEmpty(comp.Tag)
	case domain.FieldCls:
		return nilIfEmpty(comp.Cls)
	case domain.FieldMods:
		if comp.Mods == nil {
			return nil
		}
		return comp.Mods
	case domain.FieldAttrs:
		if comp.Attrs == nil {
			return nil
		}
		return comp.Attrs
	case domain.FieldContent:
		if comp.Content == nil {
			return nil
		}
		return comp.Content
	case domain.FieldMix:
		if comp.Mix == nil {
			return nil
		}
		return comp.Mix
	case domain.FieldJS:
		return comp.JS
	default:
		return comp.Extra[name]
	}
}

// SetField sets a named field. The value is stored when the field is not set or
// force is true. Otherwise, when merge is true and both values are maps, they
// are merged shallowly with the existing entries taking precedence.
// Values of the wrong type for a known field are ignored.
func (c *Context) SetField(name string, value any, force, merge bool) *Context {
	comp := c.component()
	if comp == nil || value == nil {
		return c
	}
	present := c.Field(name) != nil
	if present && !force {
		if merge {
			mergeField(comp, name, value)
		}
		return c
	}

	switch name {
	case domain.FieldBlock:
		if s, ok := value.(string); ok {
			comp.Block = s
		}
	case domain.FieldElem:
		if s, ok := value.(string); ok {
			comp.Elem = s
		}
	case domain.FieldTag:
		if s, ok := value.(string); ok {
			comp.Tag = s
		}
	case domain.FieldCls:
		if s, ok := value.(string); ok {
			comp.Cls = s
		}
	case domain.FieldMods:
		if m, ok := value.(map[string]string); ok {
			comp.Mods = maps.Clone(m)
		}
	case domain.FieldAttrs:
		if m, ok := value.(map[string]string); ok {
			comp.Attrs = maps.Clone(m)
		}
	case domain.FieldContent:
		if n, ok := value.(domain.Node); ok {
			comp.Content = n
		}
	case domain.FieldMix:
		switch v := value.(type) {
		case []domain.Node:
			comp.Mix = domain.Join(v...)
		case domain.Node:
			comp.Mix = domain.Join(v)
		}
	case domain.FieldJS:
		comp.JS = value
	default:
		if comp.Extra == nil {
			comp.Extra = make(map[string]any)
		}
		comp.Extra[name] = value
	}
	return c
}

func mergeField(comp *domain.Component, name string, value any) {
	switch name {
	case domain.FieldMods:
		if m, ok := value.(map[string]string); ok {
			comp.Mods = domain.Merge(maps.Clone(m), comp.Mods)
		}
	case domain.FieldAttrs:
		if m, ok := value.(map[string]string); ok {
			comp.Attrs = domain.Merge(maps.Clone(m), comp.Attrs)
		}
	default:
		incoming, ok := value.(map[string]any)
		if !ok {
			return
		}
		existing, ok := comp.Extra[name].(map[string]any)
		if !ok {
			return
		}
		merged := maps.Clone(incoming)
		maps.Copy(merged, existing)
		comp.Extra[name] = merged
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Content returns the content of the node.
func (c *Context) Content() domain.Node {
	if comp := c.component(); comp != nil {
		return comp.Content
	}
	return nil
}

// SetContent sets the content of the node.
func (c *Context) SetContent(n domain.Node, force bool) *Context {
	return c.SetField(domain.FieldContent, n, force, false)
}

// Mods returns the modifiers of the node.
func (c *Context) Mods() map[string]string {
	if comp := c.component(); comp != nil {
		return comp.Mods
	}
	return nil
}

// SetMods sets the modifiers of the node. Without force, existing modifiers are
// merged with mods and keep their values on conflicting keys.
func (c *Context) SetMods(mods map[string]string, force bool) *Context {
	return c.SetField(domain.FieldMods, mods, force, true)
}

// Mod returns a single modifier value.
func (c *Context) Mod(name string) string {
	return c.Mods()[name]
}

// SetMod sets a single modifier. Without force an existing key is kept.
func (c *Context) SetMod(name, value string, force bool) *Context {
	if comp := c.component(); comp != nil {
		comp.Mods = setEntry(comp.Mods, name, value, force)
	}
	return c
}

// Attrs returns the HTML attributes of the node.
func (c *Context) Attrs() map[string]string {
	if comp := c.component(); comp != nil {
		return comp.Attrs
	}
	return nil
}

// SetAttrs sets the HTML attributes of the node.
func (c *Context) SetAttrs(attrs map[string]string, force bool) *Context {
	return c.SetField(domain.FieldAttrs, attrs, force, false)
}

// Attr returns a single HTML attribute.
func (c *Context) Attr(name string) string {
	return c.Attrs()[name]
}

// SetAttr sets a single HTML attribute. Without force an existing key is kept.
func (c *Context) SetAttr(name, value string, force bool) *Context {
	if comp := c.component(); comp != nil {
		comp.Attrs = setEntry(comp.Attrs, name, value, force)
	}
	return c
}

func setEntry(m map[string]string, name, value string, force bool) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	if _, exists := m[name]; force || !exists {
		m[name] = value
	}
	return m
}

// Tag returns the tag name of the node.
func (c *Context) Tag() string {
	if comp := c.component(); comp != nil {
		return comp.Tag
	}
	return ""
}

// SetTag sets the tag name of the node.
func (c *Context) SetTag(tag string, force bool) *Context {
	return c.SetField(domain.FieldTag, tag, force, false)
}

// Cls returns the additional CSS class of the node.
func (c *Context) Cls() string {
	if comp := c.component(); comp != nil {
		return comp.Cls
	}
	return ""
}

// SetCls sets the additional CSS class of the node.
func (c *Context) SetCls(cls string, force bool) *Context {
	return c.SetField(domain.FieldCls, cls, force, false)
}

// JS returns the js parameters of the node.
func (c *Context) JS() any {
	if comp := c.component(); comp != nil {
		return comp.JS
	}
	return nil
}

// SetJS sets the js parameters of the node when none are set yet.
func (c *Context) SetJS(js any) *Context {
	return c.SetField(domain.FieldJS, js, false, false)
}

// Mix returns the mixed entities of the node.
func (c *Context) Mix() []domain.Node {
	if comp := c.component(); comp != nil {
		return comp.Mix
	}
	return nil
}

// SetMix replaces the mix when force is true or no mix is set; otherwise it
// appends mix to the existing entries. A List is spliced, any other node appended.
func (c *Context) SetMix(mix domain.Node, force bool) *Context {
	comp := c.component()
	if comp == nil || mix == nil {
		return c
	}
	if force || comp.Mix == nil {
		comp.Mix = domain.Join(mix)
		return c
	}
	comp.Mix = domain.Join(domain.List(comp.Mix), mix)
	return c
}

// WrapContent makes w the new content of the node, with the old content nested inside w.
func (c *Context) WrapContent(w *domain.Component) *Context {
	comp := c.component()
	if comp == nil || w == nil {
		return c
	}
	w.Content = comp.Content
	comp.Content = w
	return c
}

// BeforeContent places nodes in front of the current content.
func (c *Context) BeforeContent(nodes ...domain.Node) *Context {
	if comp := c.component(); comp != nil {
		parts := make([]domain.Node, 0, len(nodes)+1)
		parts = append(parts, nodes...)
		comp.Content = domain.Join(append(parts, comp.Content)...)
	}
	return c
}

// AfterContent places nodes after the current content.
func (c *Context) AfterContent(nodes ...domain.Node) *Context {
	if comp := c.component(); comp != nil {
		parts := make([]domain.Node, 0, len(nodes)+1)
		parts = append(parts, comp.Content)
		comp.Content = domain.Join(append(parts, nodes...)...)
	}
	return c
}

// Wrap schedules w to replace the whole node once the handler chain is done.
// When w is a block, element or tagged component its content becomes the node
// itself, or the wrapper scheduled by an earlier call, so repeated calls nest outward.
func (c *Context) Wrap(w domain.Node) *Context {
	comp := c.component()
	if comp == nil || w == nil {
		return c
	}
	if wc, ok := w.(*domain.Component); ok && wc.IsBEM() {
		if prev := comp.PendingWrapper(); prev != nil {
			wc.Content = prev
		} else {
			wc.Content = comp
		}
	}
	comp.SetPendingWrapper(w)
	return c
}

// Tunneled returns a tunneled parameter.
func (c *Context) Tunneled(name string) any {
	return c.tunneled[name]
}

// SetTunneled sets a tunneled parameter. Descendants receive a shallow copy of
// the tunneled set as it is when their content is built.
func (c *Context) SetTunneled(name string, value any) *Context {
	if c.tunneled == nil {
		c.tunneled = make(map[string]any)
	}
	c.tunneled[name] = value
	return c
}

// GenerateID returns a new unique identifier.
func (c *Context) GenerateID() string {
	return c.builder.ids.Generate()
}

// Stop prevents the remaining handlers of this node's chain from running.
func (c *Context) Stop() *Context {
	c.stopped = true
	return c
}

// Stopped reports whether Stop was called.
func (c *Context) Stopped() bool { return c.stopped }

// Remove drops the node: it builds into domain.Absent and its content is never built.
func (c *Context) Remove() *Context {
	c.removed = true
	return c
}

// Removed reports whether Remove was called.
func (c *Context) Removed() bool { return c.removed }
