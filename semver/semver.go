// Package semver implements the semantic-version helper of spec.md
// §4.3: parsing a (major, minor, patch) triple from several input
// shapes and comparing triples by precedence order.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// Version is a parsed semantic version triple.
type Version struct {
	Major, Minor, Patch uint64
}

// Compare returns -1, 0, or 1 as v orders before, equal to, or after o,
// comparing (major, minor, patch) lexicographically.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpUint(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpUint(v.Minor, o.Minor)
	default:
		return cmpUint(v.Patch, o.Patch)
	}
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ToValue serializes v as the Object shape the evaluator threads through
// the tree like any other value (spec.md §4.3).
func (v Version) ToValue() value.Object {
	return value.Object{
		"major": value.Number(v.Major),
		"minor": value.Number(v.Minor),
		"patch": value.Number(v.Patch),
	}
}

// FromValue reads a Version back out of the serialized shape an Object
// produced by ToValue (or any object with numeric major/minor/patch
// fields) carries. It returns false, not an error, when the shape
// doesn't fit — callers use this to decide whether the semver override
// applies to a pair of operands without aborting evaluation.
func FromValue(v value.Value) (Version, bool) {
	obj, ok := v.(value.Object)
	if !ok {
		return Version{}, false
	}
	major, ok1 := fieldToUint(obj, "major")
	minor, ok2 := fieldToUint(obj, "minor")
	patch, ok3 := fieldToUint(obj, "patch")
	if !ok1 || !ok2 || !ok3 {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor, Patch: patch}, true
}

func fieldToUint(obj value.Object, key string) (uint64, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case value.Number:
		if float64(t) < 0 {
			return 0, false
		}
		return uint64(t), true
	case value.String:
		n, err := strconv.ParseUint(string(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Parse constructs a Version from the evaluated call arguments to the
// semver(...) builtin (spec.md §4.3): a single string, a 3-element array,
// an object (either {major,minor,patch} or the ToValue shape), or three
// positional numbers.
func Parse(args []value.Value) (Version, error) {
	switch len(args) {
	case 1:
		return parseOne(args[0])
	case 3:
		major, err := toUint(args[0])
		if err != nil {
			return Version{}, err
		}
		minor, err := toUint(args[1])
		if err != nil {
			return Version{}, err
		}
		patch, err := toUint(args[2])
		if err != nil {
			return Version{}, err
		}
		return Version{Major: major, Minor: minor, Patch: patch}, nil
	default:
		return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
	}
}

func parseOne(v value.Value) (Version, error) {
	switch t := v.(type) {
	case value.String:
		return ParseString(string(t))
	case value.Array:
		if len(t) != 3 {
			return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
		}
		major, err := toUint(t[0])
		if err != nil {
			return Version{}, err
		}
		minor, err := toUint(t[1])
		if err != nil {
			return Version{}, err
		}
		patch, err := toUint(t[2])
		if err != nil {
			return Version{}, err
		}
		return Version{Major: major, Minor: minor, Patch: patch}, nil
	case value.Object:
		// Try {major, minor, patch} with numeric or numeric-string
		// fields first; fall back to the already-serialized shape.
		if major, ok := fieldToUint(t, "major"); ok {
			if minor, ok2 := fieldToUint(t, "minor"); ok2 {
				if patch, ok3 := fieldToUint(t, "patch"); ok3 {
					return Version{Major: major, Minor: minor, Patch: patch}, nil
				}
			}
		}
		if ver, ok := FromValue(t); ok {
			return ver, nil
		}
		return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
	default:
		return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
	}
}

// ParseString parses the canonical "M.m.p" form.
func ParseString(s string) (Version, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
	}
	major, err1 := strconv.ParseUint(parts[0], 10, 64)
	minor, err2 := strconv.ParseUint(parts[1], 10, 64)
	patch, err3 := strconv.ParseUint(parts[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Version{}, fmt.Errorf(errors.MsgInvalidSemverFormat)
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

func toUint(v value.Value) (uint64, error) {
	switch t := v.(type) {
	case value.Number:
		if t < 0 {
			return 0, fmt.Errorf(errors.MsgInvalidNumberFormat)
		}
		return uint64(t), nil
	case value.String:
		n, err := strconv.ParseUint(string(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf(errors.MsgInvalidNumberFormat)
		}
		return n, nil
	default:
		return 0, fmt.Errorf(errors.MsgInvalidNumberFormat)
	}
}
