package syntax

import (
	"strings"
	"unicode"

	"mc/report"
)

// Lexer is responsible for tokenizing a source file.  It walks the source
// rune by rune, tracking one-indexed line and column positions.
type Lexer struct {
	src     []rune
	ndx     int
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	h *report.Handler
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(source string, h *report.Handler) *Lexer {
	return &Lexer{
		src:     []rune(source),
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
		h:       h,
	}
}

// NextToken retrieves the next token from the source.  If the source has
// ended, this will be an EOF token.  Lexical errors are reported to the
// handler and lexing resumes after the offending rune.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok := l.lexCommentOrDiv(); tok != nil {
				return tok
			}
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	return &Token{Kind: TOK_EOF, Line: l.line, Col: l.col}
}

// Tokenize lexes the entire source into a token slice ending with EOF.
func (l *Lexer) Tokenize() []*Token {
	var toks []*Token

	for {
		tok := l.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division is handled together with comment logic.
	"%": TOK_MOD,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"&&": TOK_LAND,
	"||": TOK_LOR,
	"!":  TOK_NOT,

	"=": TOK_ASSIGN,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	",": TOK_COMMA,
	";": TOK_SEMI,
	":": TOK_COLON,
}

// lexPunctOrOper lexes a punctuation or operator symbol, matching the longest
// symbol pattern it can.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()
	l.eat()

	// A single rune need not be a symbol by itself (`&` and `|` only occur
	// doubled), so the longer match is tried before rejecting.
	kind, ok := symbolPatterns[l.tokBuff.String()]

	for {
		c := l.peek()
		if c == -1 {
			break
		}

		if nextKind, nextOk := symbolPatterns[l.tokBuff.String()+string(c)]; nextOk {
			l.eat()
			kind, ok = nextKind, true
		} else {
			break
		}
	}

	if !ok {
		l.h.Error(report.SyntaxError, "unknown character '"+l.tokBuff.String()+"'", l.startLine, l.startCol)
		l.tokBuff.Reset()
		return l.NextToken()
	}

	return l.makeToken(kind)
}

// lexCommentOrDiv handles the `/` rune: a line comment, a block comment, or
// the division operator.  It returns nil if it consumed a comment.
func (l *Lexer) lexCommentOrDiv() *Token {
	l.mark()
	l.eat()

	switch l.peek() {
	case '/':
		// Line comment: skip to the end of the line.
		for c := l.peek(); c != -1 && c != '\n'; c = l.peek() {
			l.skip()
		}
	case '*':
		// Block comment: skip to the closing `*/`.
		l.skip()

		for {
			c := l.peek()
			if c == -1 {
				l.h.Error(report.SyntaxError, "unclosed block comment", l.startLine, l.startCol)
				break
			}

			l.skip()

			if c == '*' && l.peek() == '/' {
				l.skip()
				break
			}
		}
	default:
		return l.makeToken(TOK_DIV)
	}

	l.tokBuff.Reset()
	return nil
}

// lexStringLit lexes a double-quoted string literal.  Escape sequences are
// passed through unprocessed; the quotes are trimmed from the token value.
func (l *Lexer) lexStringLit() *Token {
	l.mark()
	l.skip() // opening quote

	for {
		c := l.peek()
		if c == -1 || c == '\n' {
			l.h.Error(report.SyntaxError, "unclosed string literal", l.startLine, l.startCol)
			break
		}

		if c == '"' {
			l.skip()
			break
		}

		if c == '\\' {
			l.eat()
		}

		l.eat()
	}

	return l.makeToken(TOK_STRINGLIT)
}

// lexNumericLit lexes an integer or float literal.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()

	for c := l.peek(); isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	if l.peek() == '.' {
		l.eat()

		for c := l.peek(); isDecimalDigit(c); c = l.peek() {
			l.eat()
		}

		return l.makeToken(TOK_FLOATLIT)
	}

	return l.makeToken(TOK_INTLIT)
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// peek returns the current rune without consuming it, or -1 at end of input.
func (l *Lexer) peek() rune {
	if l.ndx < len(l.src) {
		return l.src[l.ndx]
	}

	return -1
}

// eat consumes the current rune into the token buffer.
func (l *Lexer) eat() {
	l.tokBuff.WriteRune(l.src[l.ndx])
	l.advance()
}

// skip consumes the current rune without adding it to the token buffer.
func (l *Lexer) skip() {
	l.advance()
}

func (l *Lexer) advance() {
	if l.src[l.ndx] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.ndx++
}

// mark records the position of the start of the token being built.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken builds a token of the given kind from the token buffer and resets
// the buffer.
func (l *Lexer) makeToken(kind int) *Token {
	tok := &Token{
		Kind:  kind,
		Value: l.tokBuff.String(),
		Line:  l.startLine,
		Col:   l.startCol,
	}

	l.tokBuff.Reset()

	return tok
}

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
