// Package codec implements a profile-driven RLP codec.
//
// A Profile declares the ordered field layout of one wire record; each
// field is handled by a Kind that validates and converts the value to or
// from its RLP-ready form. RLP carries no field names, so the declared
// order is the only contract between the encode and decode paths.
package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned when a value's Go type does not match what the
	// field's kind accepts.
	ErrType = errors.New("unexpected value type")

	// ErrStructure is returned when a decoded RLP node tree does not match
	// the profile's shape.
	ErrStructure = errors.New("structure mismatch")
)

// Kind validates and converts one field between its in-memory value and
// its RLP-ready form.
//
// Encode returns either a []byte (scalar kinds) or a []interface{} of
// nested RLP-ready values (composite kinds). Decode takes the matching
// node from a parsed RLP tree: a []byte leaf or a []interface{} list.
// Both validate before transforming and report failures against path,
// e.g. "tx.clauses[0].to".
type Kind interface {
	Encode(val interface{}, path string) (interface{}, error)
	Decode(node interface{}, path string) (interface{}, error)
}

// Profile names one field and binds it to the kind that codes it.
// Composite kinds hold child profiles, forming a recursive schema tree.
type Profile struct {
	Name string
	Kind Kind
}

func typeErr(path string, want string, got interface{}) error {
	return fmt.Errorf("%s: %w: want %s, got %T", path, ErrType, want, got)
}

func structureErr(path string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", path, ErrStructure, fmt.Sprintf(format, args...))
}
