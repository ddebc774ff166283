package context

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/respectZ/exprimo/value"
)

// LoadError reports a failure decoding a context document, kept distinct
// from the evaluator's EvaluationError since it never occurs inside the
// tree walker (SPEC_FULL.md §7).
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading context from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadYAML decodes a flat YAML document into a Context of Variable
// entries, recursively converting mappings and sequences to Value.Object
// and Value.Array.
func LoadYAML(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return fromMap(doc), nil
}

// LoadJSON decodes a flat JSON document into a Context of Variable
// entries using gjson, mirroring LoadYAML's shape.
func LoadJSON(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("root document must be a JSON object")}
	}
	b := NewBuilder()
	parsed.ForEach(func(key, val gjson.Result) bool {
		b.SetVariable(key.String(), fromGJSON(val))
		return true
	})
	return b.Build(), nil
}

func fromMap(doc map[string]any) *Context {
	b := NewBuilder()
	for k, v := range doc {
		b.SetVariable(k, fromAny(v))
	}
	return b.Build()
}

func fromAny(v any) value.Value {
	switch t := v.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.Bool(t)
	case int:
		return value.Number(t)
	case int64:
		return value.Number(t)
	case float64:
		return value.Number(t)
	case uint64:
		return value.Number(t)
	case string:
		return value.String(t)
	case []any:
		arr := make(value.Array, len(t))
		for i, e := range t {
			arr[i] = fromAny(e)
		}
		return arr
	case map[string]any:
		obj := make(value.Object, len(t))
		for k, e := range t {
			obj[k] = fromAny(e)
		}
		return obj
	default:
		return value.NullValue
	}
}

func fromGJSON(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.NullValue
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		return value.Number(r.Num)
	case gjson.String:
		return value.String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var arr value.Array
			r.ForEach(func(_, v gjson.Result) bool {
				arr = append(arr, fromGJSON(v))
				return true
			})
			return arr
		}
		obj := make(value.Object)
		r.ForEach(func(k, v gjson.Result) bool {
			obj[k.String()] = fromGJSON(v)
			return true
		})
		return obj
	default:
		return value.NullValue
	}
}
