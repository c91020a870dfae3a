package domain

import "maps"

// Clone returns a deep copy of n. Components, lists and their mods, attrs and mix
// are copied; Extra and JS values are copied shallowly. Pending wrappers are dropped.
func Clone(n Node) Node {
	switch v := n.(type) {
	case List:
		if v == nil {
			return v
		}
		out := make(List, len(v))
		for i, m := range v {
			out[i] = Clone(m)
		}
		return out
	case *Component:
		if v == nil {
			return v
		}
		return v.Clone()
	default:
		return n
	}
}

// Clone returns a deep copy of the component.
func (c *Component) Clone() *Component {
	out := &Component{
		Block:   c.Block,
		Elem:    c.Elem,
		Mods:    maps.Clone(c.Mods),
		Attrs:   maps.Clone(c.Attrs),
		Content: Clone(c.Content),
		Tag:     c.Tag,
		Cls:     c.Cls,
		JS:      c.JS,
		Extra:   maps.Clone(c.Extra),
	}
	if c.Mix != nil {
		out.Mix = make([]Node, len(c.Mix))
		for i, m := range c.Mix {
			out.Mix[i] = Clone(m)
		}
	}
	return out
}
