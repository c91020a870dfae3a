// Package codec converts node trees to and from their JSON and YAML wire form.
//
// Objects decode into *domain.Component (plain objects included), arrays into
// domain.List and everything else into domain.Scalar. Unknown object fields are
// kept in Component.Extra and written back on encode. Mod and attr values are
// strings; booleans and numbers found there are stringified.
//
// An explicit "content": null decodes to domain.Null() and is written back as
// null. A mix is always encoded as an array, so a single mixed object comes
// back wrapped in a one-element list.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/bemjson/pkg/domain"
	"github.com/aretw0/bemjson/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrTrailingData reports input left over after the first JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// wireComponent mirrors the recognized fields of a component on the wire.
type wireComponent struct {
	Block   string            `mapstructure:"block"`
	Elem    string            `mapstructure:"elem"`
	Mods    map[string]string `mapstructure:"mods"`
	Attrs   map[string]string `mapstructure:"attrs"`
	Tag     string            `mapstructure:"tag"`
	Cls     string            `mapstructure:"cls"`
	Content any               `mapstructure:"content"`
	Mix     any               `mapstructure:"mix"`
	JS      any               `mapstructure:"js"`
	Extra   map[string]any    `mapstructure:",remain"`
}

// Decode maps a generic value, as produced by encoding/json or yaml.v3, onto a Node.
func Decode(v any) (domain.Node, error) {
	return decodeAt("$", v)
}

func decodeAt(path string, v any) (domain.Node, error) {
	switch raw := v.(type) {
	case nil:
		return domain.Null(), nil
	case []any:
		list := make(domain.List, len(raw))
		for i, item := range raw {
			n, err := decodeAt(path+"["+strconv.Itoa(i)+"]", item)
			if err != nil {
				return nil, err
			}
			list[i] = n
		}
		return list, nil
	case map[string]any:
		return decodeComponent(path, raw)
	case map[any]any:
		m := make(map[string]any, len(raw))
		for k, val := range raw {
			key, ok := k.(string)
			if !ok {
				return nil, &domain.DecodeError{Path: path, Reason: fmt.Sprintf("non-string key %v", k)}
			}
			m[key] = val
		}
		return decodeComponent(path, m)
	case string, bool, json.Number, float64, float32, int, int64, uint64:
		return domain.Scalar{Value: raw}, nil
	default:
		return nil, &domain.DecodeError{Path: path, Reason: fmt.Sprintf("unsupported value of type %T", v)}
	}
}

func decodeComponent(path string, m map[string]any) (*domain.Component, error) {
	var w wireComponent
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &w,
		DecodeHook: registry.StringifyHook,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, &domain.DecodeError{Path: path, Reason: "malformed component", Err: err}
	}

	comp := &domain.Component{
		Block: w.Block,
		Elem:  w.Elem,
		Mods:  w.Mods,
		Attrs: w.Attrs,
		Tag:   w.Tag,
		Cls:   w.Cls,
		JS:    w.JS,
	}
	if len(w.Extra) > 0 {
		comp.Extra = w.Extra
	}

	if w.Content != nil {
		if comp.Content, err = decodeAt(path+"."+domain.FieldContent, w.Content); err != nil {
			return nil, err
		}
	} else if _, explicit := m[domain.FieldContent]; explicit {
		comp.Content = domain.Null()
	}

	if w.Mix != nil {
		mix, err := decodeAt(path+"."+domain.FieldMix, w.Mix)
		if err != nil {
			return nil, err
		}
		comp.Mix = domain.Join(mix)
	}
	return comp, nil
}

// Encode maps a Node back onto generic values suitable for json.Marshal or yaml.Marshal.
// Absent encodes as nil.
func Encode(n domain.Node) any {
	switch v := n.(type) {
	case nil, domain.Absent:
		return nil
	case domain.Scalar:
		return v.Value
	case domain.List:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = Encode(m)
		}
		return out
	case *domain.Component:
		if v == nil {
			return nil
		}
		return encodeComponent(v)
	default:
		return nil
	}
}

func encodeComponent(c *domain.Component) map[string]any {
	out := make(map[string]any, len(c.Extra)+4)
	for k, v := range c.Extra {
		out[k] = v
	}
	setString := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}
	setString(domain.FieldBlock, c.Block)
	setString(domain.FieldElem, c.Elem)
	setString(domain.FieldTag, c.Tag)
	setString(domain.FieldCls, c.Cls)
	if c.Mods != nil {
		out[domain.FieldMods] = c.Mods
	}
	if c.Attrs != nil {
		out[domain.FieldAttrs] = c.Attrs
	}
	if c.Content != nil {
		out[domain.FieldContent] = Encode(c.Content)
	}
	if c.Mix != nil {
		out[domain.FieldMix] = Encode(domain.List(c.Mix))
	}
	if c.JS != nil {
		out[domain.FieldJS] = c.JS
	}
	return out
}

// UnmarshalJSON decodes a JSON document into a Node. Numbers are kept as json.Number.
// Anything but whitespace after the first value is an error.
func UnmarshalJSON(data []byte) (domain.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse json: %w", ErrTrailingData)
	}
	return Decode(raw)
}

// MarshalJSON encodes a Node as JSON, indented when pretty is set.
func MarshalJSON(n domain.Node, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(Encode(n), "", "  ")
	}
	return json.Marshal(Encode(n))
}

// UnmarshalYAML decodes a YAML document into a Node.
func UnmarshalYAML(data []byte) (domain.Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return Decode(raw)
}

// MarshalYAML encodes a Node as YAML.
func MarshalYAML(n domain.Node) ([]byte, error) {
	return yaml.Marshal(toYAML(Encode(n)))
}

// toYAML replaces json.Number values with plain numbers; yaml.v3 would
// otherwise quote them as strings. Map keys are sorted by the encoder.
func toYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toYAML(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
