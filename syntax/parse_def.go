package syntax

import (
	"mc/ast"
)

// parseDef parses a single top-level definition.
//
// program := (variableDecl | functionDecl | externFunctionDecl)* EOF
func (p *Parser) parseDef() (ast.Def, bool) {
	switch p.tok.Kind {
	case TOK_COLON:
		return p.parseFuncDecl()
	case TOK_EXTERN:
		return p.parseExternFuncDecl()
	case TOK_IDENT:
		return p.parseVarDecl()
	default:
		p.reject()
		return nil, false
	}
}

// parseFuncDecl parses a function definition.
//
// functionDecl := ':' IDENT '(' params? ')' ':' type '{' stmt* '}'
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, bool) {
	fd := &ast.FuncDecl{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.assert(TOK_IDENT) {
		return nil, false
	}

	fd.Name = p.tok.Value
	p.next()

	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}
	fd.Params = params

	if !p.assertAndNext(TOK_COLON) {
		return nil, false
	}

	if fd.ReturnType, ok = p.parseType(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_LBRACE) {
		return nil, false
	}

	for !p.got(TOK_RBRACE) {
		if p.got(TOK_EOF) {
			p.reject()
			return nil, false
		}

		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}

		fd.Body = append(fd.Body, stmt)
	}

	p.next()

	return fd, true
}

// parseExternFuncDecl parses an extern function declaration.
//
// externFunctionDecl := 'extern' ':' IDENT '(' params? ')' ':' type ';'
func (p *Parser) parseExternFuncDecl() (*ast.ExternFuncDecl, bool) {
	efd := &ast.ExternFuncDecl{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.assertAndNext(TOK_COLON) {
		return nil, false
	}

	if !p.assert(TOK_IDENT) {
		return nil, false
	}

	efd.Name = p.tok.Value
	p.next()

	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}
	efd.Params = params

	if !p.assertAndNext(TOK_COLON) {
		return nil, false
	}

	if efd.ReturnType, ok = p.parseType(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	return efd, true
}

// parseParams parses a parenthesized, possibly empty parameter list.
//
// params := param (',' param)*
// param  := IDENT ':' type
func (p *Parser) parseParams() ([]ast.Param, bool) {
	if !p.assertAndNext(TOK_LPAREN) {
		return nil, false
	}

	var params []ast.Param

	for !p.got(TOK_RPAREN) {
		if len(params) > 0 && !p.assertAndNext(TOK_COMMA) {
			return nil, false
		}

		if !p.assert(TOK_IDENT) {
			return nil, false
		}

		param := ast.Param{
			Name: p.tok.Value,
			Pos:  ast.Pos{Line: p.tok.Line, Col: p.tok.Col},
		}
		p.next()

		if !p.assertAndNext(TOK_COLON) {
			return nil, false
		}

		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}

		param.Type = typ
		params = append(params, param)
	}

	p.next()

	return params, true
}
