package engine

import (
	"testing"

	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func newTestContext(n domain.Node) *Context {
	return New().newContext(n, 1, 1, nil, nil)
}

func TestContext_NamedEntriesForce(t *testing.T) {
	c := newTestContext(domain.Block("b1"))

	c.SetAttr("id", "a", false).SetAttr("id", "b", false)
	assert.Equal(t, "a", c.Attr("id"))
	c.SetAttr("id", "c", true)
	assert.Equal(t, "c", c.Attr("id"))

	c.SetMod("size", "s", false).SetMod("size", "m", false)
	assert.Equal(t, "s", c.Mod("size"))
	c.SetMod("size", "l", true)
	assert.Equal(t, "l", c.Mod("size"))
}

func TestContext_SetModsMergesWithExistingPrecedence(t *testing.T) {
	c := newTestContext(&domain.Component{Block: "b1", Mods: map[string]string{"a": "old", "b": "keep"}})

	c.SetMods(map[string]string{"a": "new", "c": "added"}, false)
	assert.Equal(t, map[string]string{"a": "old", "b": "keep", "c": "added"}, c.Mods())

	c.SetMods(map[string]string{"only": "this"}, true)
	assert.Equal(t, map[string]string{"only": "this"}, c.Mods())

	empty := newTestContext(domain.Block("b1"))
	empty.SetMods(map[string]string{"x": "1"}, false)
	assert.Equal(t, map[string]string{"x": "1"}, empty.Mods())
}

func TestContext_SetAttrsDoesNotMergeWithoutForce(t *testing.T) {
	c := newTestContext(&domain.Component{Block: "b1", Attrs: map[string]string{"a": "1"}})

	c.SetAttrs(map[string]string{"b": "2"}, false)
	assert.Equal(t, map[string]string{"a": "1"}, c.Attrs())

	c.SetAttrs(map[string]string{"b": "2"}, true)
	assert.Equal(t, map[string]string{"b": "2"}, c.Attrs())
}

func TestContext_ScalarFields(t *testing.T) {
	c := newTestContext(domain.Block("b1"))

	c.SetTag("span", false).SetTag("div", false)
	assert.Equal(t, "span", c.Tag())
	c.SetTag("div", true)
	assert.Equal(t, "div", c.Tag())

	c.SetCls("one", false).SetCls("two", false)
	assert.Equal(t, "one", c.Cls())

	c.SetJS(map[string]any{"k": 1}).SetJS("ignored")
	assert.Equal(t, map[string]any{"k": 1}, c.JS())

	c.SetContent(domain.String("a"), false).SetContent(domain.String("b"), false)
	assert.Equal(t, domain.String("a"), c.Content())
	c.SetContent(domain.String("b"), true)
	assert.Equal(t, domain.String("b"), c.Content())
}

func TestContext_GenericField(t *testing.T) {
	c := newTestContext(&domain.Component{Block: "b1", Extra: map[string]any{"opts": map[string]any{"a": 1}}})

	assert.Equal(t, "b1", c.Field(domain.FieldBlock))
	assert.Nil(t, c.Field(domain.FieldElem))
	assert.Nil(t, c.Field("missing"))

	c.SetField("custom", "v", false, false)
	assert.Equal(t, "v", c.Field("custom"))

	c.SetField("opts", map[string]any{"a": 2, "b": 3}, false, true)
	assert.Equal(t, map[string]any{"a": 1, "b": 3}, c.Field("opts"))

	c.SetField(domain.FieldElem, "e1", false, false)
	assert.Equal(t, "e1", c.Value().(*domain.Component).Elem)

	// Wrong type for a known field is ignored.
	c.SetField(domain.FieldTag, 42, true, false)
	assert.Nil(t, c.Field(domain.FieldTag))
}

func TestContext_Mix(t *testing.T) {
	c := newTestContext(domain.Block("b1"))

	c.SetMix(domain.Block("m1"), false)
	assert.Equal(t, []domain.Node{domain.Block("m1")}, c.Mix())

	c.SetMix(domain.List{domain.Block("m2"), domain.Block("m3")}, false)
	assert.Equal(t, []domain.Node{domain.Block("m1"), domain.Block("m2"), domain.Block("m3")}, c.Mix())

	c.SetMix(domain.Block("m4"), true)
	assert.Equal(t, []domain.Node{domain.Block("m4")}, c.Mix())
}

func TestContext_BeforeAfterContent(t *testing.T) {
	a, b := domain.Block("a"), domain.Block("b")

	tests := []struct {
		name    string
		content domain.Node
		before  domain.Node
		after   domain.Node
		want    domain.List
	}{
		{"no content", nil, a, b, domain.List{a, b}},
		{"scalar content", domain.String("x"), a, b, domain.List{a, domain.String("x"), b}},
		{"component content", domain.Elem("e"), a, b, domain.List{a, domain.Elem("e"), b}},
		{"list content", domain.List{domain.String("x"), domain.String("y")}, a, b, domain.List{a, domain.String("x"), domain.String("y"), b}},
		{"list insertions", domain.String("x"), domain.List{a, b}, domain.List{b, a}, domain.List{a, b, domain.String("x"), b, a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(&domain.Component{Block: "b1", Content: tt.content})
			c.BeforeContent(tt.before).AfterContent(tt.after)
			assert.Equal(t, tt.want, c.Content())
		})
	}
}

func TestContext_BeforeContentVariadic(t *testing.T) {
	c := newTestContext(&domain.Component{Block: "b1", Content: domain.String("x")})
	c.BeforeContent(domain.String("1"), domain.String("2"))
	assert.Equal(t, domain.List{domain.String("1"), domain.String("2"), domain.String("x")}, c.Content())
}

func TestContext_WrapContent(t *testing.T) {
	c := newTestContext(&domain.Component{Block: "b1", Content: domain.String("x")})
	c.WrapContent(&domain.Component{Elem: "inner"}).WrapContent(&domain.Component{Elem: "outer"})

	assert.Equal(t, &domain.Component{
		Elem:    "outer",
		Content: &domain.Component{Elem: "inner", Content: domain.String("x")},
	}, c.Content())
}

func TestContext_WrapNonBEMWrapperKeepsItsContent(t *testing.T) {
	node := domain.Block("b1")
	c := newTestContext(node)

	w := &domain.Component{Content: domain.String("replacement")}
	c.Wrap(w)

	assert.Equal(t, domain.String("replacement"), w.Content)
	assert.Same(t, w, node.PendingWrapper())
}

func TestContext_Tunneled(t *testing.T) {
	c := newTestContext(domain.Block("b1"))
	assert.Nil(t, c.Tunneled("k"))
	c.SetTunneled("k", 1)
	assert.Equal(t, 1, c.Tunneled("k"))
}

func TestContext_NonComponentIsInert(t *testing.T) {
	c := newTestContext(domain.String("x"))

	c.SetTag("div", true).SetAttr("a", "b", true).SetMod("m", "v", true).
		SetMix(domain.Block("m"), true).AfterContent(domain.String("y")).Wrap(domain.Block("w"))

	assert.Equal(t, domain.String("x"), c.Value())
	assert.Empty(t, c.Tag())
	assert.Nil(t, c.Attrs())
	assert.Nil(t, c.Mix())
	assert.Nil(t, c.Field(domain.FieldTag))
}

func TestContext_Flags(t *testing.T) {
	c := newTestContext(domain.Block("b1"))
	assert.False(t, c.Stopped())
	assert.False(t, c.Removed())
	c.Stop().Remove()
	assert.True(t, c.Stopped())
	assert.True(t, c.Removed())
	assert.Equal(t, "b1", c.Block().Block)
}
