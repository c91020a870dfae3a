package engine

import (
	"github.com/aretw0/bemjson/pkg/registry"
)

// Handler transforms the node wrapped by c. It receives the declaration it was
// registered with, so shared settings live on the declaration rather than in closures.
type Handler func(c *Context, d *Declaration)

// Declaration groups the handlers registered for one block descriptor.
type Declaration struct {
	registry.Descriptor

	// OnBlock runs for block-root nodes of the block.
	OnBlock Handler

	// OnElem runs for every element of the block.
	OnElem Handler

	// OnElems maps element names to handlers; registry.Wildcard matches any element.
	OnElems map[string]Handler

	// Params is free-form data handlers may read through their *Declaration.
	Params map[string]any
}

// Empty reports whether the declaration has no handler at all.
func (d *Declaration) Empty() bool {
	return d.OnBlock == nil && d.OnElem == nil && len(d.OnElems) == 0
}

// Binding is the value stored in the registry: a handler and its declaration.
type Binding struct {
	Handler Handler
	Decl    *Declaration
}

// Registry is the declaration store shared by builders.
type Registry = registry.Registry[Binding]

// NewRegistry creates an empty declaration registry.
func NewRegistry() *Registry {
	return registry.New[Binding]()
}
