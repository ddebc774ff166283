package eval

import (
	"strconv"
	"strings"

	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// evalLiteral decodes a Literal's raw token text per its LitKind
// (spec.md §6). String literals keep their surrounding quotes at the
// lexer/parser boundary; the quote character is peeled here.
func (e *Evaluator) evalLiteral(n *ast.Literal) (value.Value, *errors.NodeError) {
	switch n.LitKind {
	case ast.LiteralNumber:
		f, err := strconv.ParseFloat(n.Raw, 64)
		if err != nil {
			return nil, errors.Atf(n, errors.MsgUnknownLiteralType, n.Raw)
		}
		return value.Number(f), nil
	case ast.LiteralBool:
		return value.Bool(n.Raw == "true"), nil
	case ast.LiteralNull:
		return value.NullValue, nil
	case ast.LiteralString:
		return value.String(unquote(n.Raw)), nil
	default:
		return nil, errors.Atf(n, errors.MsgUnknownLiteralType, n.Raw)
	}
}

// unquote strips one layer of matching leading/trailing quote
// characters from a raw string-literal token.
func unquote(raw string) string {
	if len(raw) >= 2 {
		quote := raw[0]
		if (quote == '"' || quote == '\'') && raw[len(raw)-1] == quote {
			return raw[1 : len(raw)-1]
		}
	}
	return strings.TrimSpace(raw)
}
