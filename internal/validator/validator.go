package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/bemjson/pkg/dsl"
	"github.com/aretw0/bemjson/pkg/registry"
)

// ValidateRules checks a rule file for rules that cannot compile or can never
// do anything useful. All problems are reported in one error.
func ValidateRules(f *dsl.File) error {
	var errors []string
	seen := make(map[string]int)

	for i, r := range f.Rules {
		name := fmt.Sprintf("rule %d (%s)", i, ruleKey(r))

		if _, err := r.Declaration(); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if r.ModVal != "" && r.ModName == "" {
			errors = append(errors, fmt.Sprintf("%s: modVal %q without modName", name, r.ModVal))
		}
		if isEmpty(r.Actions) {
			errors = append(errors, fmt.Sprintf("%s: no actions", name))
		}
		if r.Remove && r.Wrap != nil {
			errors = append(errors, fmt.Sprintf("%s: wrap has no effect on a removed node", name))
		}

		key := ruleKey(r)
		if prev, ok := seen[key]; ok {
			errors = append(errors, fmt.Sprintf("%s: same target and guard as rule %d", name, prev))
		} else {
			seen[key] = i
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// ruleKey identifies the target and guard of a rule, e.g. "b1_size_big__title".
func ruleKey(r dsl.Rule) string {
	key := r.Descriptor().String()
	if r.Elem != "" {
		key += registry.ElemDelim + r.Elem
	}
	return key
}

func isEmpty(a dsl.Actions) bool {
	return len(a.Tunnel) == 0 && len(a.Mods) == 0 && len(a.Attrs) == 0 &&
		len(a.AttrsFromTunnel) == 0 && a.Tag == "" && a.Cls == "" && a.JS == nil &&
		a.Mix == nil && a.Content == nil && a.WrapContent == nil &&
		a.BeforeContent == nil && a.AfterContent == nil && a.IDAttr == "" &&
		a.Wrap == nil && !a.Remove && !a.Stop
}
