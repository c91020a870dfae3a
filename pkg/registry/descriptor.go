package registry

import (
	"fmt"
	"reflect"

	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Descriptor names the block a declaration applies to and, optionally, the
// modifier guard that must hold on the governing block for it to run.
type Descriptor struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	ModName string `json:"modName,omitempty" yaml:"modName,omitempty" mapstructure:"modName"`
	ModVal  string `json:"modVal,omitempty" yaml:"modVal,omitempty" mapstructure:"modVal"`
}

// Guarded reports whether the descriptor carries a modifier guard.
func (d Descriptor) Guarded() bool {
	return d.ModName != ""
}

// Matches evaluates the modifier guard against the given mods.
// An unguarded descriptor always matches. A guarded one never matches a nil mods
// map. A guard with an empty ModVal matches only when ModName is not set.
func (d Descriptor) Matches(mods map[string]string) bool {
	if !d.Guarded() {
		return true
	}
	if mods == nil {
		return false
	}
	v, ok := mods[d.ModName]
	if d.ModVal == "" {
		return !ok
	}
	return ok && v == d.ModVal
}

// String renders the descriptor in BEM notation: block, block_mod or block_mod_val.
func (d Descriptor) String() string {
	switch {
	case !d.Guarded():
		return d.Name
	case d.ModVal == "":
		return d.Name + ModDelim + d.ModName
	default:
		return d.Name + ModDelim + d.ModName + ModDelim + d.ModVal
	}
}

// ParseDescriptor accepts a block name, a Descriptor, or a map with name/modName/modVal keys.
func ParseDescriptor(v any) (Descriptor, error) {
	var d Descriptor
	switch raw := v.(type) {
	case string:
		d.Name = raw
	case Descriptor:
		d = raw
	case *Descriptor:
		if raw != nil {
			d = *raw
		}
	case map[string]any, map[string]string:
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &d,
			ErrorUnused: true,
			DecodeHook:  StringifyHook,
		})
		if err != nil {
			return Descriptor{}, err
		}
		if err := dec.Decode(raw); err != nil {
			return Descriptor{}, fmt.Errorf("%w: %v", domain.ErrInvalidDescriptor, err)
		}
	default:
		return Descriptor{}, fmt.Errorf("%w: unsupported type %T", domain.ErrInvalidDescriptor, v)
	}

	if d.Name == "" {
		return Descriptor{}, fmt.Errorf("%w: block name is required", domain.ErrInvalidDescriptor)
	}
	return d, nil
}

// StringifyHook is a mapstructure decode hook turning primitive values
// (bools, numbers) into strings when the target field is a string.
func StringifyHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if s, ok := domain.ScalarString(data); ok {
		return s, nil
	}
	return data, nil
}
