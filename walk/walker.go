package walk

import (
	"fmt"

	"mc/ast"
	"mc/report"
	"mc/symbols"
	"mc/types"
)

// Walker is responsible for semantically analyzing a parsed program: scope
// and symbol resolution plus type checking.  It collects diagnostics and
// continues; expressions that fail to check yield the Unknown type, which is
// swallowed by later checks so a single error does not cascade.
type Walker struct {
	// table is the symbol table being populated.
	table *symbols.Table

	// h is the diagnostic handler.
	h *report.Handler

	// enclosingFunc is the function whose body is being checked, or nil
	// outside any function body.
	enclosingFunc *symbols.FuncSymbol

	// hasReturn indicates whether a return statement has been seen in the
	// current function.
	hasReturn bool
}

// NewWalker creates a new walker reporting to the given handler.
func NewWalker(table *symbols.Table, h *report.Handler) *Walker {
	return &Walker{table: table, h: h}
}

// WalkProgram semantically analyzes a whole program.  It runs in two phases:
// first every top-level function signature is collected into the global
// scope, then every body is checked.  Collecting signatures first lets
// forward references and mutual recursion type-check.
func (w *Walker) WalkProgram(prog *ast.Program) {
	// Phase A: signature collection.
	for _, def := range prog.Defs {
		switch v := def.(type) {
		case *ast.FuncDecl:
			w.collectSignature(v.Name, v.Params, v.ReturnType, v.Position())
		case *ast.ExternFuncDecl:
			w.collectSignature(v.Name, v.Params, v.ReturnType, v.Position())
		}
	}

	// Phase B: body checking.
	for _, def := range prog.Defs {
		switch v := def.(type) {
		case *ast.FuncDecl:
			w.walkFuncDecl(v)
		case *ast.VarDecl:
			w.walkVarDecl(v)
		}
	}
}

// collectSignature registers a function declaration as a symbol in the global
// scope.  Parameters are recorded as initialized variables so reading a
// parameter never warns.
func (w *Walker) collectSignature(name string, params []ast.Param, returnType types.Type, pos ast.Pos) {
	funcSym := symbols.NewFuncSymbol(name, returnType, pos.Line, pos.Col)

	for _, param := range params {
		paramSym := symbols.NewVarSymbol(param.Name, param.Type, false, param.Pos.Line, param.Pos.Col)
		paramSym.Initialized = true
		funcSym.AddParam(paramSym)
	}

	if !w.table.Define(funcSym) {
		w.h.ReportRedefinedSymbol(name, pos.Line, pos.Col)
	}
}

// walkFuncDecl checks the body of a function definition.
func (w *Walker) walkFuncDecl(fd *ast.FuncDecl) {
	sym := w.table.Resolve(fd.Name)

	funcSym, ok := sym.(*symbols.FuncSymbol)
	if !ok {
		// The name collided with another definition; the redefinition has
		// already been reported.
		return
	}

	w.enclosingFunc = funcSym
	w.hasReturn = false
	funcSym.LocalScope = w.table.EnterScope(fd.Name)

	for _, param := range funcSym.Params {
		w.table.Define(param)
	}

	for _, stmt := range fd.Body {
		w.walkStmt(stmt)
	}

	if funcSym.Type() != types.Void && !w.hasReturn {
		pos := fd.Position()
		w.h.Error(report.SemanticError, fmt.Sprintf("Function '%s' must return a value", fd.Name), pos.Line, pos.Col)
	}

	w.table.ExitScope()
	w.enclosingFunc = nil
}
