package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidNode is returned when a decoded value cannot be mapped onto a Node.
var ErrInvalidNode = errors.New("invalid node")

// ErrInvalidDescriptor is returned when a declaration descriptor has no block name
// or an unsupported shape.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// DecodeError reports a malformed value at a specific path of a tree.
type DecodeError struct {
	Path   string // JSON-path-like location, e.g. "$.content[1].mods"
	Reason string // Human-readable reason for failure
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap exposes ErrInvalidNode so callers can use errors.Is.
func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidNode, e.Err}
	}
	return []error{ErrInvalidNode}
}
