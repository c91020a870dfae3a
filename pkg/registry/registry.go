package registry

import (
	"sort"
	"sync"
)

// Naming delimiters of BEM notation.
const (
	ElemDelim = "__"
	ModDelim  = "_"
)

// Wildcard is the element name matching every element of a block.
const Wildcard = "*"

// ElemKey returns the conventional block__elem name of an element chain.
func ElemKey(block, elem string) string {
	if elem == "" || elem == Wildcard {
		return block + ElemDelim + Wildcard
	}
	return block + ElemDelim + elem
}

// Entry is one stored handler together with the descriptor it was declared with.
type Entry[T any] struct {
	Descriptor Descriptor
	Value      T
}

type chains[T any] struct {
	block    []Entry[T]
	elems    map[string][]Entry[T]
	wildcard []Entry[T]
}

// Registry stores, per block name, the handler chains for block roots and elements.
// Newer registrations run first. It is safe for concurrent use; builds only read.
type Registry[T any] struct {
	mu     sync.RWMutex
	blocks map[string]*chains[T]
}

// New creates a new empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		blocks: make(map[string]*chains[T]),
	}
}

func (r *Registry[T]) chainsFor(block string) *chains[T] {
	c, ok := r.blocks[block]
	if !ok {
		c = &chains[T]{elems: make(map[string][]Entry[T])}
		r.blocks[block] = c
	}
	return c
}

// RegisterBlock prepends v to the block-root chain of d.Name.
func (r *Registry[T]) RegisterBlock(d Descriptor, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.chainsFor(d.Name)
	c.block = prepend(c.block, Entry[T]{Descriptor: d, Value: v})
}

// RegisterElem prepends v to the chain of elem within d.Name.
// An empty elem or Wildcard registers into the wildcard chain.
func (r *Registry[T]) RegisterElem(d Descriptor, elem string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.chainsFor(d.Name)
	e := Entry[T]{Descriptor: d, Value: v}
	if elem == "" || elem == Wildcard {
		c.wildcard = prepend(c.wildcard, e)
		return
	}
	c.elems[elem] = prepend(c.elems[elem], e)
}

// Lookup returns the chain for a node of block. With an empty elem this is the
// block-root chain; otherwise the elem-specific chain followed by the wildcard chain.
// The returned slice is owned by the caller.
func (r *Registry[T]) Lookup(block, elem string) []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.blocks[block]
	if !ok {
		return nil
	}
	if elem == "" {
		return append([]Entry[T](nil), c.block...)
	}

	specific := c.elems[elem]
	if len(specific) == 0 && len(c.wildcard) == 0 {
		return nil
	}
	out := make([]Entry[T], 0, len(specific)+len(c.wildcard))
	out = append(out, specific...)
	return append(out, c.wildcard...)
}

// Blocks returns the sorted names of every block with at least one declaration.
func (r *Registry[T]) Blocks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.blocks))
	for name := range r.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of stored entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, c := range r.blocks {
		n += len(c.block) + len(c.wildcard)
		for _, e := range c.elems {
			n += len(e)
		}
	}
	return n
}

func prepend[T any](chain []Entry[T], e Entry[T]) []Entry[T] {
	out := make([]Entry[T], 0, len(chain)+1)
	out = append(out, e)
	return append(out, chain...)
}
