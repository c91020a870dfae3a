/*
Package dsl turns declarative rules into engine declarations.

Rules can be written in YAML or JSON files, or assembled in Go with the fluent
Builder. Each rule names a block, optionally an element scope and a modifier
guard, and a set of actions applied to every matching node.

Example rule file:

	rules:
	  - block: page
	    tag: body
	    tunnel:
	      lang: en
	  - block: page
	    elem: title
	    tag: h1
	    attrsFromTunnel:
	      lang: lang
	  - block: button
	    modName: disabled
	    modVal: "true"
	    attrs:
	      disabled: disabled
	    stop: true

The same rules built in Go:

	b := dsl.New()
	b.Rule("page").Tag("body").Tunnel("lang", "en")
	b.Rule("page").Elem("title").Tag("h1").AttrFromTunnel("lang", "lang")
	b.Rule("button").When("disabled", "true").Attr("disabled", "disabled").Stop()

	decls, err := b.Build()

Node templates (content, mix, wrap and friends) are copied on every use, so a
handler never hands out the same node twice.
*/
package dsl
