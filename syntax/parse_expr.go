package syntax

import (
	"mc/ast"
)

// parseExpr parses an expression.  Precedence from loosest to tightest:
// `||`, `&&`, comparison, additive, multiplicative, unary, atom.
//
// expr := '(' expr 'as' ':' type ')'
//       | '(' expr ')'
//       | expr ('*'|'/'|'%') expr
//       | expr ('+'|'-') expr
//       | expr ('<'|'<='|'>'|'>='|'=='|'!=') expr
//       | expr ('&&'|'||') expr
//       | ('!'|'-') expr
//       | IDENT '(' args? ')'
//       | IDENT
//       | literal
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(0)
}

// binaryPrecedences maps binary operator token kinds to their precedence
// level, from loosest (0) upward.
var binaryPrecedences = map[int]int{
	TOK_LOR:  0,
	TOK_LAND: 1,

	TOK_LT:   2,
	TOK_LTEQ: 2,
	TOK_GT:   2,
	TOK_GTEQ: 2,
	TOK_EQ:   2,
	TOK_NEQ:  2,

	TOK_PLUS:  3,
	TOK_MINUS: 3,

	TOK_STAR: 4,
	TOK_DIV:  4,
	TOK_MOD:  4,
}

// parseBinaryExpr parses a left-associative chain of binary operators of at
// least the given precedence level.
func (p *Parser) parseBinaryExpr(prec int) (ast.Expr, bool) {
	if prec > 4 {
		return p.parseUnaryExpr()
	}

	lhs, ok := p.parseBinaryExpr(prec + 1)
	if !ok {
		return nil, false
	}

	for {
		opPrec, isOp := binaryPrecedences[p.tok.Kind]
		if !isOp || opPrec != prec {
			return lhs, true
		}

		op := p.tok.Value
		bop := &ast.BinaryOp{
			ExprBase: ast.NewExprBaseAt(p.tok.Line, p.tok.Col),
			Op:       op,
			Lhs:      lhs,
		}
		p.next()

		if bop.Rhs, ok = p.parseBinaryExpr(prec + 1); !ok {
			return nil, false
		}

		lhs = bop
	}
}

// parseUnaryExpr parses a prefixed unary expression.
func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	if p.got(TOK_NOT) || p.got(TOK_MINUS) {
		uop := &ast.UnaryOp{
			ExprBase: ast.NewExprBaseAt(p.tok.Line, p.tok.Col),
			Op:       p.tok.Value,
		}
		p.next()

		var ok bool
		if uop.Operand, ok = p.parseUnaryExpr(); !ok {
			return nil, false
		}

		return uop, true
	}

	return p.parseAtom()
}

// parseAtom parses an atomic expression: a parenthesized or cast expression,
// a function call, an identifier, or a literal.
func (p *Parser) parseAtom() (ast.Expr, bool) {
	switch p.tok.Kind {
	case TOK_LPAREN:
		return p.parseParenOrCast()
	case TOK_IDENT:
		{
			if p.peek().Kind == TOK_LPAREN {
				return p.parseCall()
			}

			id := &ast.Identifier{
				ExprBase: ast.NewExprBaseAt(p.tok.Line, p.tok.Col),
				Name:     p.tok.Value,
			}
			p.next()

			return id, true
		}
	case TOK_INTLIT, TOK_FLOATLIT, TOK_STRINGLIT, TOK_BOOLLIT:
		{
			lit := &ast.Literal{
				ExprBase: ast.NewExprBaseAt(p.tok.Line, p.tok.Col),
				Kind:     literalKind(p.tok.Kind),
				Value:    p.tok.Value,
			}
			p.next()

			return lit, true
		}
	default:
		p.reject()
		return nil, false
	}
}

// parseParenOrCast parses a parenthesized expression or the cast form
// `(expr as : type)`.
func (p *Parser) parseParenOrCast() (ast.Expr, bool) {
	startLine, startCol := p.tok.Line, p.tok.Col
	p.next()

	inner, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.got(TOK_AS) {
		p.next()

		if !p.assertAndNext(TOK_COLON) {
			return nil, false
		}

		cast := &ast.Cast{
			ExprBase: ast.NewExprBaseAt(startLine, startCol),
			Src:      inner,
		}

		if cast.Target, ok = p.parseType(); !ok {
			return nil, false
		}

		if !p.assertAndNext(TOK_RPAREN) {
			return nil, false
		}

		return cast, true
	}

	if !p.assertAndNext(TOK_RPAREN) {
		return nil, false
	}

	return inner, true
}

// parseCall parses a function call expression.
//
// call := IDENT '(' args? ')'
// args := expr (',' expr)*
func (p *Parser) parseCall() (*ast.Call, bool) {
	call := &ast.Call{
		ExprBase: ast.NewExprBaseAt(p.tok.Line, p.tok.Col),
		Name:     p.tok.Value,
	}
	p.next() // identifier
	p.next() // opening paren

	for !p.got(TOK_RPAREN) {
		if len(call.Args) > 0 && !p.assertAndNext(TOK_COMMA) {
			return nil, false
		}

		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		call.Args = append(call.Args, arg)
	}

	p.next()

	return call, true
}

// literalKind maps a literal token kind to its AST literal kind.
func literalKind(tokKind int) int {
	switch tokKind {
	case TOK_INTLIT:
		return ast.LitInt
	case TOK_FLOATLIT:
		return ast.LitFloat
	case TOK_STRINGLIT:
		return ast.LitString
	default:
		return ast.LitBool
	}
}
