package syntax

import (
	"testing"

	"mc/ast"
	"mc/report"
	"mc/types"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *report.Handler) {
	t.Helper()

	h := report.NewHandler()
	prog := NewParser(src, h).Parse()

	return prog, h
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, h := parseProgram(t, src)
	if h.HasErrors() {
		t.Fatalf("unexpected parse error: %s", h.Errors()[0].Message)
	}

	return prog
}

func TestParseFuncDecl(t *testing.T) {
	prog := mustParse(t, ": main () : i32 { return 0; }")

	if len(prog.Defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(prog.Defs))
	}

	fd, ok := prog.Defs[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected FuncDecl, got %T", prog.Defs[0])
	}

	if fd.Name != "main" {
		t.Errorf("expected name main, got %s", fd.Name)
	}
	if fd.ReturnType != types.I32 {
		t.Errorf("expected return type i32, got %s", fd.ReturnType.Repr())
	}
	if len(fd.Params) != 0 {
		t.Errorf("expected no parameters, got %d", len(fd.Params))
	}
	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fd.Body))
	}

	rs, ok := fd.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected ReturnStmt, got %T", fd.Body[0])
	}
	if rs.Value == nil {
		t.Errorf("expected a return value")
	}
}

func TestParseParams(t *testing.T) {
	prog := mustParse(t, ": add (x : i32, y : i64) : i64 { return x; }")

	fd := prog.Defs[0].(*ast.FuncDecl)
	if len(fd.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fd.Params))
	}

	if fd.Params[0].Name != "x" || fd.Params[0].Type != types.I32 {
		t.Errorf("param 0: expected x : i32, got %s : %s", fd.Params[0].Name, fd.Params[0].Type.Repr())
	}
	if fd.Params[1].Name != "y" || fd.Params[1].Type != types.I64 {
		t.Errorf("param 1: expected y : i64, got %s : %s", fd.Params[1].Name, fd.Params[1].Type.Repr())
	}
}

func TestParseExternFuncDecl(t *testing.T) {
	prog := mustParse(t, "extern : putchar (c : i32) : i32 ;")

	efd, ok := prog.Defs[0].(*ast.ExternFuncDecl)
	if !ok {
		t.Fatalf("expected ExternFuncDecl, got %T", prog.Defs[0])
	}

	if efd.Name != "putchar" || efd.ReturnType != types.I32 || len(efd.Params) != 1 {
		t.Errorf("unexpected extern shape: %s", efd.Name)
	}
}

func TestParseStatements(t *testing.T) {
	prog := mustParse(t, `
: f (n : i32) : i32 {
	x : i32 = 0;
	x = x + 1;
	if (x < n) { x = n; } else { x = 0; }
	while (x > 0) { x = x - 1; }
	{ y : i32 = 1; }
	f(x);
	return x;
}`)

	fd := prog.Defs[0].(*ast.FuncDecl)
	wantShapes := []interface{}{
		&ast.VarDecl{}, &ast.Assign{}, &ast.IfStmt{}, &ast.WhileStmt{},
		&ast.Block{}, &ast.ExprStmt{}, &ast.ReturnStmt{},
	}

	if len(fd.Body) != len(wantShapes) {
		t.Fatalf("expected %d statements, got %d", len(wantShapes), len(fd.Body))
	}

	for i, stmt := range fd.Body {
		switch wantShapes[i].(type) {
		case *ast.VarDecl:
			if _, ok := stmt.(*ast.VarDecl); !ok {
				t.Errorf("statement %d: expected VarDecl, got %T", i, stmt)
			}
		case *ast.Assign:
			if _, ok := stmt.(*ast.Assign); !ok {
				t.Errorf("statement %d: expected Assign, got %T", i, stmt)
			}
		case *ast.IfStmt:
			if _, ok := stmt.(*ast.IfStmt); !ok {
				t.Errorf("statement %d: expected IfStmt, got %T", i, stmt)
			}
		case *ast.WhileStmt:
			if _, ok := stmt.(*ast.WhileStmt); !ok {
				t.Errorf("statement %d: expected WhileStmt, got %T", i, stmt)
			}
		case *ast.Block:
			if _, ok := stmt.(*ast.Block); !ok {
				t.Errorf("statement %d: expected Block, got %T", i, stmt)
			}
		case *ast.ExprStmt:
			if _, ok := stmt.(*ast.ExprStmt); !ok {
				t.Errorf("statement %d: expected ExprStmt, got %T", i, stmt)
			}
		case *ast.ReturnStmt:
			if _, ok := stmt.(*ast.ReturnStmt); !ok {
				t.Errorf("statement %d: expected ReturnStmt, got %T", i, stmt)
			}
		}
	}
}

func TestParseCastExpr(t *testing.T) {
	prog := mustParse(t, ": f () : i64 { return (1 as : i64); }")

	rs := prog.Defs[0].(*ast.FuncDecl).Body[0].(*ast.ReturnStmt)
	cast, ok := rs.Value.(*ast.Cast)
	if !ok {
		t.Fatalf("expected Cast, got %T", rs.Value)
	}

	if cast.Target != types.I64 {
		t.Errorf("expected cast target i64, got %s", cast.Target.Repr())
	}

	if _, ok := cast.Src.(*ast.Literal); !ok {
		t.Errorf("expected literal cast source, got %T", cast.Src)
	}
}

func TestParseParenExpr(t *testing.T) {
	prog := mustParse(t, ": f () : i32 { return (1 + 2) * 3; }")

	rs := prog.Defs[0].(*ast.FuncDecl).Body[0].(*ast.ReturnStmt)
	bop, ok := rs.Value.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected BinaryOp, got %T", rs.Value)
	}

	// The parenthesized addition is the left operand of the multiplication.
	if bop.Op != "*" {
		t.Errorf("expected root operator *, got %s", bop.Op)
	}
	if inner, ok := bop.Lhs.(*ast.BinaryOp); !ok || inner.Op != "+" {
		t.Errorf("expected parenthesized + as left operand")
	}
}

func TestParsePrecedence(t *testing.T) {
	prog := mustParse(t, ": f (b : bool) : bool { return b && 1 + 2 * 3 < 10; }")

	rs := prog.Defs[0].(*ast.FuncDecl).Body[0].(*ast.ReturnStmt)

	// && binds loosest, then <, then +, then *.
	and, ok := rs.Value.(*ast.BinaryOp)
	if !ok || and.Op != "&&" {
		t.Fatalf("expected && at the root")
	}

	cmp, ok := and.Rhs.(*ast.BinaryOp)
	if !ok || cmp.Op != "<" {
		t.Fatalf("expected < under &&")
	}

	add, ok := cmp.Lhs.(*ast.BinaryOp)
	if !ok || add.Op != "+" {
		t.Fatalf("expected + under <")
	}

	if mul, ok := add.Rhs.(*ast.BinaryOp); !ok || mul.Op != "*" {
		t.Fatalf("expected * under +")
	}
}

func TestParseCallArgs(t *testing.T) {
	prog := mustParse(t, ": f () : void { g(1, 2 + 3, x); }")

	es := prog.Defs[0].(*ast.FuncDecl).Body[0].(*ast.ExprStmt)
	call, ok := es.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", es.Expr)
	}

	if call.Name != "g" || len(call.Args) != 3 {
		t.Errorf("expected g with 3 arguments, got %s with %d", call.Name, len(call.Args))
	}
}

func TestParseTopLevelVarDecl(t *testing.T) {
	prog := mustParse(t, "limit : i32 = 100;")

	vd, ok := prog.Defs[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", prog.Defs[0])
	}

	if vd.Name != "limit" || vd.DeclType != types.I32 {
		t.Errorf("unexpected declaration shape")
	}
}

func TestParseForStmt(t *testing.T) {
	prog := mustParse(t, ": f () : void { for (i : i32 = 0; i < 10; i = i + 1) { } }")

	fs, ok := prog.Defs[0].(*ast.FuncDecl).Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt")
	}

	if fs.Init == nil || fs.Cond == nil || fs.Post == nil {
		t.Errorf("expected all three header clauses")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing semicolon", ": f () : void { x : i32 = 1 }"},
		{"missing return type", ": f () { }"},
		{"bad top level", "42;"},
		{"unclosed body", ": f () : void { return;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := parseProgram(t, tt.input)

			if !h.HasErrors() {
				t.Errorf("expected a syntax error")
			} else if h.Errors()[0].Kind != report.SyntaxError {
				t.Errorf("expected SyntaxError, got %s", h.Errors()[0].Kind.Description())
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	// The damaged first definition must not hide the following one.
	prog, h := parseProgram(t, ": f ( : void { }\n: g () : void { }")

	if !h.HasErrors() {
		t.Fatalf("expected a syntax error")
	}

	found := false
	for _, def := range prog.Defs {
		if fd, ok := def.(*ast.FuncDecl); ok && fd.Name == "g" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected parser to recover and parse g")
	}
}
