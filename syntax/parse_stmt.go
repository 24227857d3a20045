package syntax

import (
	"mc/ast"
)

// parseStmt parses a single statement.
//
// stmt := variableDecl | assignment | if | while | for | return
//       | exprStmt | block
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.tok.Kind {
	case TOK_IDENT:
		switch p.peek().Kind {
		case TOK_COLON:
			return p.parseVarDecl()
		case TOK_ASSIGN:
			return p.parseAssign()
		default:
			return p.parseExprStmt()
		}
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_FOR:
		return p.parseForStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses a variable declaration.
//
// variableDecl := IDENT ':' type '=' expr ';'
func (p *Parser) parseVarDecl() (*ast.VarDecl, bool) {
	vd := &ast.VarDecl{
		ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col),
		Name:    p.tok.Value,
	}
	p.next()

	if !p.assertAndNext(TOK_COLON) {
		return nil, false
	}

	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	vd.DeclType = typ

	if !p.assertAndNext(TOK_ASSIGN) {
		return nil, false
	}

	if vd.Init, ok = p.parseExpr(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	return vd, true
}

// parseAssign parses an assignment statement.
//
// assignment := IDENT '=' expr ';'
func (p *Parser) parseAssign() (*ast.Assign, bool) {
	as := &ast.Assign{
		ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col),
		Name:    p.tok.Value,
	}
	p.next()

	if !p.assertAndNext(TOK_ASSIGN) {
		return nil, false
	}

	var ok bool
	if as.Value, ok = p.parseExpr(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	return as, true
}

// parseIfStmt parses an if statement with an optional else arm.
//
// if := 'if' '(' expr ')' stmt ('else' stmt)?
func (p *Parser) parseIfStmt() (*ast.IfStmt, bool) {
	is := &ast.IfStmt{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.assertAndNext(TOK_LPAREN) {
		return nil, false
	}

	var ok bool
	if is.Cond, ok = p.parseExpr(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_RPAREN) {
		return nil, false
	}

	if is.Then, ok = p.parseStmt(); !ok {
		return nil, false
	}

	if p.got(TOK_ELSE) {
		p.next()

		if is.Else, ok = p.parseStmt(); !ok {
			return nil, false
		}
	}

	return is, true
}

// parseWhileStmt parses a while loop.
//
// while := 'while' '(' expr ')' stmt
func (p *Parser) parseWhileStmt() (*ast.WhileStmt, bool) {
	ws := &ast.WhileStmt{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.assertAndNext(TOK_LPAREN) {
		return nil, false
	}

	var ok bool
	if ws.Cond, ok = p.parseExpr(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_RPAREN) {
		return nil, false
	}

	if ws.Body, ok = p.parseStmt(); !ok {
		return nil, false
	}

	return ws, true
}

// parseForStmt parses a for loop.  All three header clauses are optional.
//
// for := 'for' '(' (variableDecl | assignment | ';') expr? ';' forPost? ')' stmt
// forPost := IDENT '=' expr
func (p *Parser) parseForStmt() (*ast.ForStmt, bool) {
	fs := &ast.ForStmt{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.assertAndNext(TOK_LPAREN) {
		return nil, false
	}

	var ok bool

	// Init clause.  Its own terminating semicolon is consumed by the clause
	// parser.
	if p.got(TOK_SEMI) {
		p.next()
	} else if p.got(TOK_IDENT) && p.peek().Kind == TOK_COLON {
		if fs.Init, ok = p.parseVarDecl(); !ok {
			return nil, false
		}
	} else {
		if fs.Init, ok = p.parseAssign(); !ok {
			return nil, false
		}
	}

	// Condition clause.
	if !p.got(TOK_SEMI) {
		if fs.Cond, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	// Post clause: an assignment without the trailing semicolon.
	if !p.got(TOK_RPAREN) {
		post := &ast.Assign{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}

		if !p.assert(TOK_IDENT) {
			return nil, false
		}

		post.Name = p.tok.Value
		p.next()

		if !p.assertAndNext(TOK_ASSIGN) {
			return nil, false
		}

		if post.Value, ok = p.parseExpr(); !ok {
			return nil, false
		}

		fs.Post = post
	}

	if !p.assertAndNext(TOK_RPAREN) {
		return nil, false
	}

	if fs.Body, ok = p.parseStmt(); !ok {
		return nil, false
	}

	return fs, true
}

// parseReturnStmt parses a return statement with an optional value.
//
// return := 'return' expr? ';'
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, bool) {
	rs := &ast.ReturnStmt{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	if !p.got(TOK_SEMI) {
		var ok bool
		if rs.Value, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	return rs, true
}

// parseBlock parses a braced statement block.
//
// block := '{' stmt* '}'
func (p *Parser) parseBlock() (*ast.Block, bool) {
	b := &ast.Block{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}
	p.next()

	for !p.got(TOK_RBRACE) {
		if p.got(TOK_EOF) {
			p.reject()
			return nil, false
		}

		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}

		b.Stmts = append(b.Stmts, stmt)
	}

	p.next()

	return b, true
}

// parseExprStmt parses an expression used as a statement.
//
// exprStmt := expr ';'
func (p *Parser) parseExprStmt() (*ast.ExprStmt, bool) {
	es := &ast.ExprStmt{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}

	var ok bool
	if es.Expr, ok = p.parseExpr(); !ok {
		return nil, false
	}

	if !p.assertAndNext(TOK_SEMI) {
		return nil, false
	}

	return es, true
}
