package parser

import (
	"testing"

	"github.com/respectZ/exprimo/ast"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if prog.Statement == nil {
		t.Fatalf("parse %q: empty program", src)
	}
	return prog.Statement.Expr
}

func TestParseArithmeticPrecedence(t *testing.T) {
	expr := parseExpr(t, "((1+2)*3)+4*5/2-1")
	if expr.Kind() != ast.KindBinary {
		t.Fatalf("expected top-level binary, got %v", expr.Kind())
	}
}

func TestParseTernaryRightAssociative(t *testing.T) {
	expr := parseExpr(t, "a ? b : c ? d : e")
	cond, ok := expr.(*ast.Conditional)
	if !ok {
		t.Fatalf("expected Conditional, got %T", expr)
	}
	if _, ok := cond.Alternate.(*ast.Conditional); !ok {
		t.Fatalf("expected nested Conditional on alternate branch, got %T", cond.Alternate)
	}
}

func TestParseMethodCallChain(t *testing.T) {
	expr := parseExpr(t, "a.replace('h','H').replace('llo','ok')")
	outer, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", expr)
	}
	outerDot, ok := outer.Callee.(*ast.Dot)
	if !ok || outerDot.Property != "replace" {
		t.Fatalf("expected outer callee .replace, got %#v", outer.Callee)
	}
	if _, ok := outerDot.Object.(*ast.Call); !ok {
		t.Fatalf("expected inner call as receiver, got %T", outerDot.Object)
	}
}

func TestParseEmptyExpression(t *testing.T) {
	prog, err := Parse("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.Statement != nil {
		t.Fatalf("expected nil statement for empty input")
	}
}

func TestParseUnaryAndGrouping(t *testing.T) {
	expr := parseExpr(t, "!(a && b)")
	un, ok := expr.(*ast.Unary)
	if !ok || un.Operator != "!" {
		t.Fatalf("expected unary !, got %#v", expr)
	}
	if _, ok := un.Operand.(*ast.Grouping); !ok {
		t.Fatalf("expected grouping operand, got %T", un.Operand)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("1 + "); err == nil {
		t.Fatalf("expected syntax error")
	}
}
