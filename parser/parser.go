// Package parser implements a Pratt (precedence-climbing) parser for the
// exprimo expression grammar. It is the concrete implementation of the
// parser boundary the evaluator consumes: it produces ast.Node values
// whose Kind() matches the kinds the tree walker switches on. A host may
// substitute a different parser as long as it honors that same contract.
package parser

import (
	"fmt"

	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/lexer"
	"github.com/respectZ/exprimo/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	TERNARY     // ?:
	OR          // ||
	AND         // &&
	EQUALS      // == != === !==
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // ! - + (unary)
	CALL        // f(args), obj.prop
)

var precedences = map[token.Type]int{
	token.QUESTION: TERNARY,
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.STRICTEQ: EQUALS,
	token.NEQ:      EQUALS,
	token.STRICTNE: EQUALS,
	token.LT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GT:       LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.DOT:      CALL,
	token.LPAREN:   CALL,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// SyntaxError reports a parse failure with the offending position.
type SyntaxError struct {
	Message string
	Pos     token.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Parser consumes a token stream from the lexer and builds an ast.Program.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	err       error
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse reads the single expression (if any) and returns the Program.
// An empty input (only whitespace/EOF) yields a Program with a nil
// Statement, matching the "Empty expression" case the evaluator handles.
func Parse(input string) (*ast.Program, error) {
	p := New(lexer.New(input))
	prog := p.ParseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) setErr(msg string, pos token.Position) {
	if p.err == nil {
		p.err = &SyntaxError{Message: msg, Pos: pos}
	}
}

// ParseProgram parses the whole input as one expression statement.
func (p *Parser) ParseProgram() *ast.Program {
	if p.curToken.Type == token.EOF {
		return &ast.Program{}
	}
	pos := p.curToken.Pos
	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return &ast.Program{}
	}
	if p.curToken.Type != token.EOF {
		p.setErr(fmt.Sprintf("unexpected token %q", p.curToken.Literal), p.curToken.Pos)
		return &ast.Program{}
	}
	return &ast.Program{Statement: &ast.ExpressionStatement{Expr: expr, P: pos}}
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if p.err != nil {
		return left
	}

	for p.err == nil && p.curToken.Type != token.EOF && precedence < precedenceOf(p.curToken.Type) {
		switch p.curToken.Type {
		case token.DOT:
			left = p.parseDot(left)
		case token.LPAREN:
			left = p.parseCall(left)
		case token.QUESTION:
			left = p.parseConditional(left)
		default:
			left = p.parseBinary(left)
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	tok := p.curToken
	switch tok.Type {
	case token.NUMBER:
		p.nextToken()
		return &ast.Literal{Raw: tok.Literal, LitKind: ast.LiteralNumber, P: tok.Pos}
	case token.STRING:
		p.nextToken()
		return &ast.Literal{Raw: tok.Literal, LitKind: ast.LiteralString, P: tok.Pos}
	case token.TRUE, token.FALSE:
		p.nextToken()
		return &ast.Literal{Raw: tok.Literal, LitKind: ast.LiteralBool, P: tok.Pos}
	case token.NULL:
		p.nextToken()
		return &ast.Literal{Raw: tok.Literal, LitKind: ast.LiteralNull, P: tok.Pos}
	case token.IDENT:
		p.nextToken()
		return &ast.Identifier{Name: tok.Literal, P: tok.Pos}
	case token.LPAREN:
		p.nextToken()
		inner := p.parseExpression(LOWEST)
		if p.err != nil {
			return inner
		}
		if p.curToken.Type != token.RPAREN {
			p.setErr("expected ')'", p.curToken.Pos)
			return inner
		}
		p.nextToken()
		return &ast.Grouping{Inner: inner, P: tok.Pos}
	case token.BANG, token.MINUS, token.PLUS:
		p.nextToken()
		operand := p.parseExpression(PREFIX)
		return &ast.Unary{Operator: tok.Literal, Operand: operand, P: tok.Pos}
	default:
		p.setErr(fmt.Sprintf("unexpected token %q", tok.Literal), tok.Pos)
		return &ast.Literal{Raw: "null", LitKind: ast.LiteralNull, P: tok.Pos}
	}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.curToken
	prec := precedenceOf(tok.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.Binary{Operator: tok.Literal, Left: left, Right: right, P: tok.Pos}
}

func (p *Parser) parseDot(left ast.Expression) ast.Expression {
	tok := p.curToken // '.'
	p.nextToken()
	if p.curToken.Type != token.IDENT {
		p.setErr("expected property name after '.'", p.curToken.Pos)
		return left
	}
	prop := p.curToken.Literal
	p.nextToken()
	return &ast.Dot{Object: left, Property: prop, P: tok.Pos}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.curToken // '('
	p.nextToken()
	var args []ast.Expression
	if p.curToken.Type != token.RPAREN {
		args = append(args, p.parseExpression(LOWEST))
		for p.err == nil && p.curToken.Type == token.COMMA {
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
		}
	}
	if p.err != nil {
		return callee
	}
	if p.curToken.Type != token.RPAREN {
		p.setErr("expected ')' after arguments", p.curToken.Pos)
		return callee
	}
	p.nextToken()
	return &ast.Call{Callee: callee, Args: args, P: tok.Pos}
}

func (p *Parser) parseConditional(cond ast.Expression) ast.Expression {
	tok := p.curToken // '?'
	p.nextToken()
	consequent := p.parseExpression(LOWEST)
	if p.err != nil {
		return cond
	}
	if p.curToken.Type != token.COLON {
		p.setErr("expected ':' in conditional expression", p.curToken.Pos)
		return cond
	}
	p.nextToken()
	alternate := p.parseExpression(TERNARY - 1)
	return &ast.Conditional{Cond: cond, Consequent: consequent, Alternate: alternate, P: tok.Pos}
}
