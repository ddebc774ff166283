// Package builtins implements the pure, open-coded method tables of
// spec.md §4.2: string methods, array methods, and math functions,
// dispatched by (receiver-kind, method-name).
package builtins

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// StringMethods lists the receiver-less names a UFCS-style free call may
// also resolve to on a string first argument (spec.md §4.4 step 4).
var StringMethods = map[string]bool{
	"replace": true, "contains": true, "split": true, "indexOf": true,
	"lastIndexOf": true, "toUpperCase": true, "toLowerCase": true,
	"substring": true, "startsWith": true, "endsWith": true,
	"regexReplace": true, "length": true, "trim": true,
}

// CallString dispatches method on receiver s with args, per the table in
// spec.md §4.2.
func CallString(s string, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "replace":
		return stringReplace(s, args)
	case "contains":
		return stringContains(s, args)
	case "split":
		return stringSplit(s, args)
	case "indexOf":
		return stringIndexOf(s, args)
	case "lastIndexOf":
		return stringLastIndexOf(s, args)
	case "toUpperCase":
		return stringToUpperCase(s, args)
	case "toLowerCase":
		return stringToLowerCase(s, args)
	case "substring":
		return stringSubstring(s, args)
	case "startsWith":
		return stringStartsWith(s, args)
	case "endsWith":
		return stringEndsWith(s, args)
	case "regexReplace":
		return stringRegexReplace(s, args)
	case "length":
		return stringLength(s, args)
	case "trim":
		return stringTrim(s, args)
	default:
		return nil, fmt.Errorf(errors.MsgUnknownStringMethod, method)
	}
}

func requireArgs(method string, args []value.Value, n int) error {
	if len(args) != n {
		return fmt.Errorf(errors.MsgMethodRequiresNArgs, method, n)
	}
	return nil
}

func argString(v value.Value) string {
	s, ok := v.(value.String)
	if !ok {
		return ""
	}
	return string(s)
}

func stringReplace(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("replace", args, 2); err != nil {
		return nil, err
	}
	old, new := argString(args[0]), argString(args[1])
	return value.String(strings.ReplaceAll(s, old, new)), nil
}

func stringContains(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("contains", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(strings.Contains(s, argString(args[0]))), nil
}

func stringSplit(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("split", args, 1); err != nil {
		return nil, err
	}
	delim := argString(args[0])
	var parts []string
	if delim == "" {
		for _, r := range s {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(s, delim)
	}
	result := make(value.Array, len(parts))
	for i, p := range parts {
		result[i] = value.String(p)
	}
	return result, nil
}

func stringIndexOf(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("indexOf", args, 1); err != nil {
		return nil, err
	}
	return value.Number(strings.Index(s, argString(args[0]))), nil
}

func stringLastIndexOf(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("lastIndexOf", args, 1); err != nil {
		return nil, err
	}
	return value.Number(strings.LastIndex(s, argString(args[0]))), nil
}

var caser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

func stringToUpperCase(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("toUpperCase", args, 0); err != nil {
		return nil, err
	}
	return value.String(caser.String(s)), nil
}

func stringToLowerCase(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("toLowerCase", args, 0); err != nil {
		return nil, err
	}
	return value.String(lowerCaser.String(s)), nil
}

// stringSubstring slices s by byte offset, clamping out-of-range or
// reversed bounds instead of panicking (SPEC_FULL.md §9 open-question
// resolution: a library embedded in rule engines must not panic on
// attacker-influenced input).
func stringSubstring(s string, args []value.Value) (value.Value, error) {
	switch len(args) {
	case 0:
		return value.String(""), nil
	case 1:
		start := clampOffset(argOffset(args[0]), len(s))
		return value.String(s[start:]), nil
	case 2:
		start := clampOffset(argOffset(args[0]), len(s))
		end := clampOffset(argOffset(args[1]), len(s))
		if start > end {
			start, end = end, start
		}
		return value.String(s[start:end]), nil
	default:
		return nil, fmt.Errorf(errors.MsgMethodRequiresOneOrTwo, "substring")
	}
}

func argOffset(v value.Value) int {
	switch t := v.(type) {
	case value.Number:
		return int(t)
	case value.String:
		n, err := parseIntLoose(string(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func parseIntLoose(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}

func clampOffset(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

func stringStartsWith(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("startsWith", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(strings.HasPrefix(s, argString(args[0]))), nil
}

func stringEndsWith(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("endsWith", args, 1); err != nil {
		return nil, err
	}
	return value.Bool(strings.HasSuffix(s, argString(args[0]))), nil
}

func stringRegexReplace(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("regexReplace", args, 2); err != nil {
		return nil, err
	}
	pattern, replacement := argString(args[0]), argString(args[1])
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return value.String(re.ReplaceAllString(s, replacement)), nil
}

func stringLength(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("length", args, 0); err != nil {
		return nil, err
	}
	return value.Number(utf8.RuneCountInString(s)), nil
}

func stringTrim(s string, args []value.Value) (value.Value, error) {
	if err := requireArgs("trim", args, 0); err != nil {
		return nil, err
	}
	return value.String(strings.TrimSpace(s)), nil
}
