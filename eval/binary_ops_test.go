package eval

import (
	"testing"

	"github.com/respectZ/exprimo/context"
	"github.com/respectZ/exprimo/value"
)

func TestModulusSignFollowsDividend(t *testing.T) {
	v := mustEval(t, context.New(), "-10 % 3")
	if v.(value.Number) != -1 {
		t.Fatalf("got %v", v)
	}
}

func TestUnaryOperators(t *testing.T) {
	ctx := context.New()
	if v := mustEval(t, ctx, "!false"); v.(value.Bool) != true {
		t.Fatalf("got %v", v)
	}
	if v := mustEval(t, ctx, "-5"); v.(value.Number) != -5 {
		t.Fatalf("got %v", v)
	}
	if v := mustEval(t, ctx, "+\"3\""); v.(value.Number) != 3 {
		t.Fatalf("got %v", v)
	}
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	v := mustEval(t, context.New(), "(1 + 2) * 3")
	if v.(value.Number) != 9 {
		t.Fatalf("got %v", v)
	}
}

func TestStrictAndLooseEqualityAreIdentical(t *testing.T) {
	ctx := context.New()
	a := mustEval(t, ctx, `1 == "1"`)
	b := mustEval(t, ctx, `1 === "1"`)
	if a.(value.Bool) != b.(value.Bool) {
		t.Fatalf("strict/loose equality diverged: %v vs %v", a, b)
	}
}

func TestCrossKindEqualityIsFalse(t *testing.T) {
	v := mustEval(t, context.New(), `1 == "1"`)
	if v.(value.Bool) != false {
		t.Fatalf("expected cross-kind equality to be false, got %v", v)
	}
}
