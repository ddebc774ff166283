package builtins

import (
	"testing"

	"github.com/respectZ/exprimo/value"
)

func TestArrayJoinDropsNonStrings(t *testing.T) {
	arr := value.Array{value.String("a"), value.Number(1), value.String("b"), value.NullValue}
	v, err := CallArray(arr, "join", []value.Value{value.String("-")})
	if err != nil {
		t.Fatal(err)
	}
	if v.(value.String) != "a-b" {
		t.Fatalf("got %v", v)
	}
}

func TestArrayUnknownMethod(t *testing.T) {
	if _, err := CallArray(value.Array{}, "map", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestArrayJoinArity(t *testing.T) {
	if _, err := CallArray(value.Array{}, "join", nil); err == nil {
		t.Fatalf("expected arity error")
	}
}
