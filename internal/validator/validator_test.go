package validator

import (
	"testing"

	"github.com/aretw0/bemjson/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *dsl.File {
	t.Helper()
	f, err := dsl.Parse([]byte(src))
	require.NoError(t, err)
	return f
}

func TestValidateRules(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := parse(t, `
rules:
  - block: b1
    tag: span
  - block: b1
    modName: size
    modVal: big
    cls: big
  - block: b1
    elem: "*"
    stop: true
`)
		assert.NoError(t, ValidateRules(f))
	})

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing block", "rules:\n  - tag: span\n", "rule 0 ()"},
		{"bad template", "rules:\n  - block: b1\n    wrapContent: text\n", "wrapContent"},
		{"modVal without modName", "rules:\n  - block: b1\n    modVal: big\n    tag: a\n", "without modName"},
		{"no actions", "rules:\n  - block: b1\n    elem: e1\n", "rule 0 (b1__e1): no actions"},
		{"wrap and remove", "rules:\n  - block: b1\n    wrap: {tag: div}\n    remove: true\n", "no effect"},
		{"duplicate", "rules:\n  - block: b1\n    tag: a\n  - block: b1\n    tag: b\n", "same target and guard as rule 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRules(parse(t, tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "found 1 errors")
		})
	}
}
