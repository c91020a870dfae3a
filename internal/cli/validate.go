package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/bemjson/internal/validator"
	"github.com/aretw0/bemjson/pkg/dsl"
)

// RunValidate checks a rule file and prints a summary of its declarations.
func RunValidate(path string, out io.Writer) error {
	if path == "" {
		return fmt.Errorf("no rule file given: use --rules")
	}
	f, err := dsl.Load(path)
	if err != nil {
		return err
	}
	if err := validator.ValidateRules(f); err != nil {
		return err
	}

	blocks := make(map[string]struct{})
	for _, r := range f.Rules {
		blocks[r.Block] = struct{}{}
	}
	PrintSuccess(out, fmt.Sprintf("%s is valid", path))
	PrintLabelValue(out, "rules", len(f.Rules))
	PrintLabelValue(out, "blocks", len(blocks))
	return nil
}
