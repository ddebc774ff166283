// Package jsonio renders exprimo Values to JSON text, used by the CLI's
// --json output mode. It builds output incrementally with
// tidwall/sjson/tidwall/gjson rather than round-tripping Value through
// encoding/json, since Value is an interface sjson/encoding-json cannot
// marshal directly.
package jsonio

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/respectZ/exprimo/value"
)

// Encode renders v as a single-line JSON document.
func Encode(v value.Value) (string, error) {
	return encodeRaw(v)
}

// EncodeIndent renders v as a JSON document pretty-printed with the
// given indent width.
func EncodeIndent(v value.Value, indent int) (string, error) {
	raw, err := Encode(v)
	if err != nil {
		return "", err
	}
	opts := &pretty.Options{Indent: spaces(indent), SortKeys: true}
	return string(pretty.PrettyOptions([]byte(raw), opts)), nil
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// encodeRaw returns the JSON text for v. Scalars are encoded by asking
// sjson to set them under a throwaway key and reading the result back
// with gjson, so scalar JSON formatting (string escaping, number
// formatting) goes through the same library as the nested-container
// assembly below rather than a second, hand-rolled encoder.
func encodeRaw(v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Null:
		return "null", nil
	case value.Bool:
		return scalarRaw(bool(t))
	case value.Number:
		return scalarRaw(float64(t))
	case value.String:
		return scalarRaw(string(t))
	case value.Array:
		doc := "[]"
		for i, elem := range t {
			raw, err := encodeRaw(elem)
			if err != nil {
				return "", err
			}
			doc, err = sjson.SetRaw(doc, strconv.Itoa(i), raw)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	case value.Object:
		doc := "{}"
		for _, key := range t.Keys() {
			raw, err := encodeRaw(t[key])
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, escapeKey(key), raw)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	default:
		return "null", nil
	}
}

func scalarRaw(v any) (string, error) {
	doc, err := sjson.Set("{}", "v", v)
	if err != nil {
		return "", err
	}
	return gjson.Get(doc, "v").Raw, nil
}

// escapeKey escapes sjson path metacharacters ('.', '*', '?') in an
// object key so arbitrary string keys round-trip as a single path
// segment instead of being parsed as nested paths or wildcards.
func escapeKey(key string) string {
	escaped := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, key[i])
	}
	return string(escaped)
}
