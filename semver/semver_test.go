package semver

import (
	"testing"

	"github.com/respectZ/exprimo/value"
)

func TestParseStringForm(t *testing.T) {
	v, err := Parse([]value.Value{value.String("1.2.3")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != (Version{1, 2, 3}) {
		t.Fatalf("got %+v", v)
	}
}

func TestParseThreePositionalArgs(t *testing.T) {
	v, err := Parse([]value.Value{value.Number(0), value.Number(0), value.Number(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, _ := Parse([]value.Value{value.Number(1), value.Number(0), value.Number(0)})
	if v.Compare(other) >= 0 {
		t.Fatalf("expected 0.0.1 < 1.0.0")
	}
}

func TestParseArrayForm(t *testing.T) {
	v, err := Parse([]value.Value{value.Array{value.Number(2), value.String("5"), value.Number(0)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != (Version{2, 5, 0}) {
		t.Fatalf("got %+v", v)
	}
}

func TestParseObjectForm(t *testing.T) {
	v, err := Parse([]value.Value{value.Object{
		"major": value.Number(3), "minor": value.String("4"), "patch": value.Number(5),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != (Version{3, 4, 5}) {
		t.Fatalf("got %+v", v)
	}
}

func TestParseSerializedObjectFallback(t *testing.T) {
	orig, _ := Parse([]value.Value{value.String("7.8.9")})
	v, err := Parse([]value.Value{orig.ToValue()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != orig {
		t.Fatalf("got %+v, want %+v", v, orig)
	}
}

func TestParseInvalidArity(t *testing.T) {
	if _, err := Parse([]value.Value{value.Number(1), value.Number(2)}); err == nil {
		t.Fatalf("expected error for 2 args")
	}
}

func TestFromValueRejectsNonSemverObject(t *testing.T) {
	if _, ok := FromValue(value.Object{"x": value.Number(1)}); ok {
		t.Fatalf("expected false for unrelated object")
	}
	if _, ok := FromValue(value.String("not an object")); ok {
		t.Fatalf("expected false for non-object")
	}
}

func TestCompareOrdering(t *testing.T) {
	a := Version{1, 0, 0}
	b := Version{1, 0, 1}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Fatalf("ordering broken: a=%v b=%v", a.Compare(b), b.Compare(a))
	}
}
