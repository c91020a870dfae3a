package domain

// Kind is the node type discriminator.
type Kind uint8

const (
	KindScalar    Kind = iota // string, number, boolean or null
	KindList                  // Ordered sequence of nodes
	KindComponent             // Block, element or plain object
	KindAbsent                // Result of a removed node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	case KindComponent:
		return "Component"
	case KindAbsent:
		return "Absent"
	default:
		return "Unknown"
	}
}

// Node is a tree node. The union is sealed: the only implementations are
// Scalar, List, *Component and Absent. A nil Node is an undefined scalar.
type Node interface {
	Kind() Kind
	node()
}

// Scalar is a leaf value: string, number (json.Number, float64 or int), bool or nil.
type Scalar struct {
	Value any
}

// Kind implements Node.
func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) node()      {}

// String is a shortcut for a string scalar.
func String(s string) Scalar { return Scalar{Value: s} }

// Null is the null scalar.
func Null() Scalar { return Scalar{} }

// List is an ordered, position-aware sequence of nodes.
type List []Node

// Kind implements Node.
func (List) Kind() Kind { return KindList }
func (List) node()      {}

// Absent is the explicit "no node here" marker produced when a node is removed.
type Absent struct{}

// Kind implements Node.
func (Absent) Kind() Kind { return KindAbsent }
func (Absent) node()      {}

// Component is a BEM entity (block or element) or, when it carries neither a
// block nor an elem, a plain object whose content is still built.
//
// Empty strings and nil maps/slices mean "field not set".
type Component struct {
	Block   string
	Elem    string
	Mods    map[string]string
	Attrs   map[string]string
	Content Node
	Tag     string
	Cls     string
	Mix     []Node
	JS      any

	// Extra holds unknown fields verbatim. They pass through a build untouched.
	Extra map[string]any

	// wrapper is build-only state set by Context.Wrap. It is never encoded.
	wrapper Node
}

// Kind implements Node.
func (*Component) Kind() Kind { return KindComponent }
func (*Component) node()      {}

// HasIdentity reports whether the component declares a block or an elem.
func (c *Component) HasIdentity() bool {
	return c.Block != "" || c.Elem != ""
}

// IsBEM reports whether the component can act as a wrapper around another node:
// it declares a block, an elem or a tag.
func (c *Component) IsBEM() bool {
	return c.HasIdentity() || c.Tag != ""
}

// PendingWrapper returns the wrapper scheduled to replace this component, if any.
func (c *Component) PendingWrapper() Node {
	return c.wrapper
}

// SetPendingWrapper schedules w to replace this component once its handler chain is done.
// Passing nil clears the pending wrapper.
func (c *Component) SetPendingWrapper(w Node) {
	c.wrapper = w
}

// Block is a shortcut for a component declaring a block.
func Block(name string) *Component {
	return &Component{Block: name}
}

// Elem is a shortcut for a component declaring an element of the governing block.
func Elem(name string) *Component {
	return &Component{Elem: name}
}
