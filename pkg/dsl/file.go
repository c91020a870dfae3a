package dsl

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/bemjson/pkg/engine"
	"github.com/aretw0/bemjson/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is a parsed rule file.
type File struct {
	Rules []Rule `json:"rules" yaml:"rules" mapstructure:"rules"`
}

// Registrar accepts compiled declarations. *engine.Builder satisfies it.
type Registrar interface {
	Register(d engine.Declaration)
}

// Parse reads rules from YAML or JSON. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if raw == nil {
		return &File{}, nil
	}

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &f,
		ErrorUnused: true,
		DecodeHook:  registry.StringifyHook,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return &f, nil
}

// Load reads and parses a rule file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Declarations compiles every rule. All rule errors are reported together.
func (f *File) Declarations() ([]engine.Declaration, error) {
	decls := make([]engine.Declaration, 0, len(f.Rules))
	var errs []error
	for i, r := range f.Rules {
		d, err := r.Declaration()
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		decls = append(decls, d)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return decls, nil
}

// Apply compiles the rules and registers them in file order, so later rules
// run first on a node.
func (f *File) Apply(r Registrar) error {
	decls, err := f.Declarations()
	if err != nil {
		return err
	}
	for _, d := range decls {
		r.Register(d)
	}
	return nil
}
