package syntax

import (
	"fmt"

	"mc/ast"
	"mc/report"
	"mc/types"
)

// Parser is the recursive-descent parser for an M source file.  It acts as a
// state machine moving over the file token by token: all parsing functions
// assume they begin with the parser centered on the first token of their
// production and consume every token of the production, leaving the parser on
// the next token.  Syntax errors are reported to the handler; the top-level
// loop then synchronizes to the start of the next definition.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// ahead is the lookahead token, if one has been peeked.
	ahead *Token

	// h is the diagnostic handler syntax errors are reported to.
	h *report.Handler
}

// NewParser creates a new parser over the given source text.
func NewParser(source string, h *report.Handler) *Parser {
	return &Parser{
		lexer: NewLexer(source, h),
		h:     h,
	}
}

// Parse parses the source file into a program node.  The returned program may
// be partial if syntax errors were reported.
func (p *Parser) Parse() *ast.Program {
	p.next()

	prog := &ast.Program{ASTBase: ast.NewASTBaseAt(p.tok.Line, p.tok.Col)}

	for !p.got(TOK_EOF) {
		if def, ok := p.parseDef(); ok {
			prog.Defs = append(prog.Defs, def)
		} else {
			p.synchronize()
		}
	}

	return prog
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	if p.ahead != nil {
		p.tok = p.ahead
		p.ahead = nil
	} else {
		p.tok = p.lexer.NextToken()
	}
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() *Token {
	if p.ahead == nil {
		p.ahead = p.lexer.NextToken()
	}

	return p.ahead
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assert checks if the parser is on a token of a given kind and rejects the
// token if not.  It returns a boolean indicating whether or not the parser is
// on a matching token kind (and should continue).
func (p *Parser) assert(kind int) bool {
	if p.got(kind) {
		return true
	}

	p.reject()
	return false
}

// assertAndNext performs an assert operation and moves the parser forward.
func (p *Parser) assertAndNext(kind int) bool {
	if p.assert(kind) {
		p.next()
		return true
	}

	return false
}

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.got(TOK_EOF) {
		p.h.Error(report.SyntaxError, "unexpected end of file", p.tok.Line, p.tok.Col)
	} else {
		p.h.Error(report.SyntaxError, fmt.Sprintf("unexpected token: '%s'", p.tok.Value), p.tok.Line, p.tok.Col)
	}
}

// synchronize skips tokens until the parser is positioned on a token that can
// begin a top-level definition or on EOF.
func (p *Parser) synchronize() {
	for !p.got(TOK_EOF) {
		if p.got(TOK_COLON) || p.got(TOK_EXTERN) {
			return
		}

		// A semicolon or closing brace ends the damaged region; the next
		// token begins a fresh production.
		if p.got(TOK_SEMI) || p.got(TOK_RBRACE) {
			p.next()
			return
		}

		p.next()
	}
}

// -----------------------------------------------------------------------------

// parseType parses a primitive type name.
//
// type := 'i8' | 'i16' | 'i32' | 'i64' | 'u8' | 'u16' | 'u32' | 'u64'
//       | 'f32' | 'f64' | 'bool' | 'string' | 'void'
func (p *Parser) parseType() (types.Type, bool) {
	if !IsTypeToken(p.tok.Kind) {
		p.reject()
		return types.Unknown, false
	}

	typ := types.FromString(p.tok.Value)
	p.next()

	return typ, true
}
