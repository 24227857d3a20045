package syntax

import (
	"testing"

	"mc/report"
)

func lexAll(t *testing.T, src string) ([]*Token, *report.Handler) {
	t.Helper()

	h := report.NewHandler()
	toks := NewLexer(src, h).Tokenize()

	return toks, h
}

func kinds(toks []*Token) []int {
	ks := make([]int, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}

	return ks
}

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "function header",
			input: ": main () : i32 {",
			want:  []int{TOK_COLON, TOK_IDENT, TOK_LPAREN, TOK_RPAREN, TOK_COLON, TOK_I32, TOK_LBRACE, TOK_EOF},
		},
		{
			name:  "operators",
			input: "+ - * / % < <= > >= == != && || ! =",
			want: []int{
				TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_DIV, TOK_MOD,
				TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ, TOK_EQ, TOK_NEQ,
				TOK_LAND, TOK_LOR, TOK_NOT, TOK_ASSIGN, TOK_EOF,
			},
		},
		{
			name:  "keywords and literals",
			input: "extern if else while for return as true false 42 3.14 \"hi\"",
			want: []int{
				TOK_EXTERN, TOK_IF, TOK_ELSE, TOK_WHILE, TOK_FOR, TOK_RETURN, TOK_AS,
				TOK_BOOLLIT, TOK_BOOLLIT, TOK_INTLIT, TOK_FLOATLIT, TOK_STRINGLIT, TOK_EOF,
			},
		},
		{
			name:  "type names",
			input: "i8 i16 i32 i64 u8 u16 u32 u64 f32 f64 bool string void",
			want: []int{
				TOK_I8, TOK_I16, TOK_I32, TOK_I64, TOK_U8, TOK_U16, TOK_U32, TOK_U64,
				TOK_F32, TOK_F64, TOK_BOOL, TOK_STRING, TOK_VOID, TOK_EOF,
			},
		},
		{
			name:  "line comment",
			input: "x // comment here\ny",
			want:  []int{TOK_IDENT, TOK_IDENT, TOK_EOF},
		},
		{
			name:  "block comment",
			input: "x /* multi\nline */ y",
			want:  []int{TOK_IDENT, TOK_IDENT, TOK_EOF},
		},
		{
			name:  "division is not a comment",
			input: "a / b",
			want:  []int{TOK_IDENT, TOK_DIV, TOK_IDENT, TOK_EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, h := lexAll(t, tt.input)

			if h.HasErrors() {
				t.Fatalf("unexpected lex errors: %v", h.Errors()[0].Message)
			}

			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d", len(tt.want), len(got))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected kind %d, got %d (%q)", i, tt.want[i], got[i], toks[i].Value)
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	toks, h := lexAll(t, "a\n  bb\n\tc")
	if h.HasErrors() {
		t.Fatalf("unexpected lex errors")
	}

	wantPos := []struct{ line, col int }{
		{1, 1},
		{2, 3},
		{3, 2},
	}

	for i, want := range wantPos {
		if toks[i].Line != want.line || toks[i].Col != want.col {
			t.Errorf("token %d: expected %d:%d, got %d:%d", i, want.line, want.col, toks[i].Line, toks[i].Col)
		}
	}
}

func TestLexerStringLiteralValue(t *testing.T) {
	toks, h := lexAll(t, `"hello world"`)
	if h.HasErrors() {
		t.Fatalf("unexpected lex errors")
	}

	if toks[0].Kind != TOK_STRINGLIT {
		t.Fatalf("expected string literal, got kind %d", toks[0].Kind)
	}

	// The quotes are trimmed from the token value.
	if toks[0].Value != "hello world" {
		t.Errorf("expected value %q, got %q", "hello world", toks[0].Value)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown character", "a $ b"},
		{"unclosed string", `"abc`},
		{"unclosed block comment", "/* abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := lexAll(t, tt.input)

			if !h.HasErrors() {
				t.Errorf("expected a syntax error")
			} else if h.Errors()[0].Kind != report.SyntaxError {
				t.Errorf("expected SyntaxError, got %s", h.Errors()[0].Kind.Description())
			}
		})
	}
}
