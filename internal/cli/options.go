package cli

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Output and input formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options holds the flags shared by the CLI commands.
type Options struct {
	RulesPath  string
	Debug      bool
	Format     string // Input and output format; empty infers it from the input file name.
	Pretty     bool
	IDStrategy string
	IDPrefix   string
}

// resolveFormat picks the tree format: the explicit flag, then the input file
// extension, then JSON.
func resolveFormat(flag, inputPath string) (string, error) {
	switch strings.ToLower(flag) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q: use %s or %s", flag, FormatJSON, FormatYAML)
	}
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}
