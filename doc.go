/*
Package bemjson is a declarative engine for transforming BEMJSON trees.

A BEMJSON tree is made of scalars, lists and objects. Objects naming a block or an
element are BEM entities; declarations registered per block (optionally guarded by
a block modifier) run on those entities and reshape them: set tags, attributes,
modifiers and mixes, add or wrap content, pass parameters down to descendants,
replace or remove nodes.

# Concept

Declarations are registered on an Engine before building. For every entity the
engine resolves a chain of handlers (most recent first, specific elements before
the "*" wildcard), runs it, then builds the content, pre-order and left to right.
Build never modifies its input and never fails.

# Usage

	eng := bemjson.New()

	eng.Decl("link", bemjson.Declaration{
		OnBlock: func(c *bemjson.Context, _ *bemjson.Declaration) {
			c.SetTag("a", false).SetAttr("href", "#", false)
		},
	})

	out, err := eng.BuildJSON([]byte(`{"block":"link","content":"home"}`), false)

Rules can also be written as YAML or JSON files and loaded with Engine.LoadRules;
see package dsl for the format.

# Observability

WithLogger routes debug records about registration and builds to a slog.Logger.
WithMetrics and WithLifecycleHooks expose every entity visit, handler call,
removal and build as events; see package observability.
*/
package bemjson
