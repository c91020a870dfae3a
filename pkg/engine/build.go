package engine

import (
	"maps"
	"time"

	"github.com/aretw0/bemjson/pkg/domain"
)

// Build applies the declarations to the wrapped node and its descendants and
// returns the result. Handlers run before content is built (pre-order), list
// members are built left to right.
func (c *Context) Build() domain.Node {
	switch n := c.node.(type) {
	case *domain.Component:
		if n == nil {
			return n
		}
		// Reached again as the content of its own wrapper: already built.
		if n.PendingWrapper() != nil {
			n.SetPendingWrapper(nil)
			return n
		}
		if !n.HasIdentity() {
			n.Content = c.buildContent(n.Content)
			return n
		}
		return c.buildEntity(n)
	case domain.List:
		return c.buildList(n)
	default:
		return c.node
	}
}

func (c *Context) buildEntity(n *domain.Component) domain.Node {
	b := c.builder
	blockName := ""
	if c.block != nil {
		blockName = c.block.Block
	}

	var chain []Binding
	var descs []string
	if blockName != "" {
		for _, e := range b.registry.Lookup(blockName, n.Elem) {
			chain = append(chain, e.Value)
			descs = append(descs, e.Descriptor.String())
		}
	}

	event := &domain.NodeEvent{
		EventBase:    domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeEnter},
		Block:        blockName,
		Elem:         n.Elem,
		Position:     c.pos,
		SiblingCount: c.siblings,
		Handlers:     len(chain),
	}
	if b.hooks.OnNodeEnter != nil {
		b.hooks.OnNodeEnter(event)
	}
	if len(chain) > 0 {
		b.logger.Debug("applying handlers", "block", blockName, "elem", n.Elem, "handlers", len(chain), "pos", c.pos)
	}

	for i, bind := range chain {
		d := bind.Decl.Descriptor
		// Guards are checked against the live mods of the governing block, so an
		// earlier handler may enable or disable a later one.
		if !d.Matches(c.block.Mods) {
			c.emitHandler(blockName, n.Elem, descs[i], true)
			continue
		}
		bind.Handler(c, bind.Decl)
		c.emitHandler(blockName, n.Elem, descs[i], false)
		if c.removed {
			break
		}
		if c.stopped {
			b.logger.Debug("handler chain stopped", "block", blockName, "elem", n.Elem, "decl", descs[i])
			break
		}
	}

	if c.removed {
		b.logger.Debug("node removed", "block", blockName, "elem", n.Elem, "pos", c.pos)
		if b.hooks.OnRemove != nil {
			ev := *event
			ev.Type = domain.EventRemove
			ev.Timestamp = time.Now()
			b.hooks.OnRemove(&ev)
		}
		return domain.Absent{}
	}

	out := c.finish()

	if b.hooks.OnNodeLeave != nil {
		ev := *event
		ev.Type = domain.EventNodeLeave
		ev.Timestamp = time.Now()
		b.hooks.OnNodeLeave(&ev)
	}
	return out
}

// finish builds the content of the (possibly replaced) node and resolves a
// pending wrapper.
func (c *Context) finish() domain.Node {
	cur, ok := c.node.(*domain.Component)
	if !ok || cur == nil {
		// Replaced by a non-component value: returned as is.
		return c.node
	}
	cur.Content = c.buildContent(cur.Content)

	if w := cur.PendingWrapper(); w != nil {
		c.builder.logger.Debug("applying wrapper", "block", cur.Block, "elem", cur.Elem)
		out := c.buildChild(w, 1, 1)
		// A wrapper that does not nest the node leaves it unreachable; clear it anyway.
		cur.SetPendingWrapper(nil)
		return out
	}
	return cur
}

func (c *Context) emitHandler(block, elem, desc string, skipped bool) {
	if c.builder.hooks.OnHandler == nil {
		return
	}
	c.builder.hooks.OnHandler(&domain.HandlerEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventHandler},
		Block:      block,
		Elem:       elem,
		Descriptor: desc,
		Skipped:    skipped,
		Stopped:    !skipped && c.stopped,
	})
}

func (c *Context) buildList(l domain.List) domain.Node {
	if l == nil {
		return l
	}
	out := make(domain.List, 0, len(l))
	for i, m := range l {
		built := c.buildChild(m, i+1, len(l))
		if _, gone := built.(domain.Absent); gone {
			continue
		}
		out = append(out, built)
	}
	return out
}

// buildContent builds a content field; removed content becomes unset.
func (c *Context) buildContent(content domain.Node) domain.Node {
	if content == nil {
		return nil
	}
	built := c.buildChild(content, 1, 1)
	if _, gone := built.(domain.Absent); gone {
		return nil
	}
	return built
}

// buildChild builds a nested node in a fresh context carrying a copy of the
// tunneled parameters. Scalars are returned without a context.
func (c *Context) buildChild(n domain.Node, pos, siblings int) domain.Node {
	var gov *domain.Component
	switch ch := n.(type) {
	case *domain.Component:
		if ch == nil {
			return n
		}
		gov = c.governorFor(ch)
	case domain.List:
		gov = c.block
	default:
		return n
	}
	return c.builder.newContext(n, pos, siblings, gov, maps.Clone(c.tunneled)).Build()
}

// governorFor resolves the governing block of a child component: it inherits the
// current one unless it declares its own block. Declaring the current block
// together with an elem still makes it an element of the current block.
func (c *Context) governorFor(ch *domain.Component) *domain.Component {
	if ch.Block == "" {
		return c.block
	}
	if c.block != nil && ch.Block == c.block.Block && ch.Elem != "" {
		return c.block
	}
	return ch
}
