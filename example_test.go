package bemjson_test

import (
	"fmt"
	"log"

	"github.com/aretw0/bemjson"
	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/identity"
)

// ExampleEngine_Decl declares a block and an element and builds a small tree.
func ExampleEngine_Decl() {
	eng := bemjson.New()

	err := eng.Decl("menu", bemjson.Declaration{
		OnBlock: func(c *bemjson.Context, _ *bemjson.Declaration) {
			c.SetTag("ul", false)
		},
		OnElems: map[string]bemjson.Handler{
			"item": func(c *bemjson.Context, _ *bemjson.Declaration) {
				c.SetTag("li", false)
				if c.IsFirst() {
					c.SetMod("first", "yes", false)
				}
			},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	out, err := eng.BuildJSON([]byte(`{"block":"menu","content":[{"elem":"item","content":"a"},{"elem":"item","content":"b"}]}`), false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	// Output:
	// {"block":"menu","content":[{"content":"a","elem":"item","mods":{"first":"yes"},"tag":"li"},{"content":"b","elem":"item","tag":"li"}],"tag":"ul"}
}

// ExampleEngine_Decl_guard registers a handler that only runs for a modifier value.
func ExampleEngine_Decl_guard() {
	eng := bemjson.New()

	eng.Decl(map[string]any{"name": "button", "modName": "size", "modVal": "big"}, bemjson.Declaration{
		OnBlock: func(c *bemjson.Context, _ *bemjson.Declaration) {
			c.SetCls("btn-lg", false)
		},
	})

	out, _ := eng.BuildJSON([]byte(`[{"block":"button","mods":{"size":"big"}},{"block":"button"}]`), false)
	fmt.Println(string(out))
	// Output:
	// [{"block":"button","cls":"btn-lg","mods":{"size":"big"}},{"block":"button"}]
}

// ExampleEngine_Build_wrap wraps a node and generates identifiers.
func ExampleEngine_Build_wrap() {
	eng := bemjson.New(bemjson.WithIdentifier(identity.NewCounter("id")))

	eng.Decl("field", bemjson.Declaration{
		OnBlock: func(c *bemjson.Context, _ *bemjson.Declaration) {
			c.SetAttr("id", c.GenerateID(), false)
			c.Wrap(&domain.Component{Tag: "label"})
		},
	})

	out := eng.Build(domain.Block("field"))
	label := out.(*domain.Component)
	fmt.Println(label.Tag, label.Content.(*domain.Component).Attrs["id"])
	// Output:
	// label id1
}
