package walk

import (
	"fmt"

	"mc/ast"
	"mc/report"
	"mc/symbols"
	"mc/types"
)

// walkStmt checks a single statement.
func (w *Walker) walkStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.Assign:
		w.walkAssign(v)
	case *ast.IfStmt:
		w.walkIfStmt(v)
	case *ast.WhileStmt:
		w.walkWhileStmt(v)
	case *ast.ForStmt:
		w.walkForStmt(v)
	case *ast.ReturnStmt:
		w.walkReturnStmt(v)
	case *ast.Block:
		w.walkBlock(v)
	case *ast.ExprStmt:
		w.walkExpr(v.Expr)
	}
}

// walkVarDecl checks a variable declaration and defines the variable in the
// current scope as initialized.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	exprType := w.walkExpr(vd.Init)
	pos := vd.Position()

	if !types.Assignable(vd.DeclType, exprType) {
		w.h.ReportTypeError(vd.DeclType.Repr(), exprType.Repr(), pos.Line, pos.Col)
	}

	varSym := symbols.NewVarSymbol(vd.Name, vd.DeclType, false, pos.Line, pos.Col)
	varSym.Initialized = true

	if !w.table.Define(varSym) {
		w.h.ReportRedefinedSymbol(vd.Name, pos.Line, pos.Col)
	}
}

// walkAssign checks an assignment statement and marks the target initialized.
func (w *Walker) walkAssign(as *ast.Assign) {
	pos := as.Position()
	sym := w.table.Resolve(as.Name)

	if sym == nil {
		w.h.ReportUndefinedSymbol(as.Name, pos.Line, pos.Col)
		return
	}

	varSym, ok := sym.(*symbols.VarSymbol)
	if !ok {
		w.h.ReportInvalidAssignment(as.Name, fmt.Sprintf("'%s' is not a variable", as.Name), pos.Line, pos.Col)
		return
	}

	if varSym.Constant {
		w.h.ReportConstantAssignment(as.Name, pos.Line, pos.Col)
		return
	}

	exprType := w.walkExpr(as.Value)

	if !types.Assignable(varSym.Type(), exprType) {
		w.h.ReportTypeError(varSym.Type().Repr(), exprType.Repr(), pos.Line, pos.Col)
	}

	varSym.Initialized = true
}

// walkIfStmt checks an if statement.  Each arm is walked inside its own named
// scope.
func (w *Walker) walkIfStmt(is *ast.IfStmt) {
	w.requireBool(is.Cond)

	w.table.EnterScope("if")
	w.walkStmt(is.Then)
	w.table.ExitScope()

	if is.Else != nil {
		w.table.EnterScope("else")
		w.walkStmt(is.Else)
		w.table.ExitScope()
	}
}

// walkWhileStmt checks a while loop.
func (w *Walker) walkWhileStmt(ws *ast.WhileStmt) {
	w.requireBool(ws.Cond)

	w.table.EnterScope("while")
	w.walkStmt(ws.Body)
	w.table.ExitScope()
}

// walkForStmt checks a for loop.  The header clauses and the body share one
// scope so the init declaration is visible to the condition and post clause.
func (w *Walker) walkForStmt(fs *ast.ForStmt) {
	w.table.EnterScope("for")

	if fs.Init != nil {
		w.walkStmt(fs.Init)
	}

	if fs.Cond != nil {
		w.requireBool(fs.Cond)
	}

	if fs.Post != nil {
		w.walkStmt(fs.Post)
	}

	w.walkStmt(fs.Body)

	w.table.ExitScope()
}

// walkReturnStmt checks a return statement against the enclosing function's
// return type.
func (w *Walker) walkReturnStmt(rs *ast.ReturnStmt) {
	pos := rs.Position()

	if w.enclosingFunc == nil {
		w.h.Error(report.SemanticError, "Return statement outside function", pos.Line, pos.Col)
		return
	}

	w.hasReturn = true

	if rs.Value != nil {
		returnType := w.walkExpr(rs.Value)

		if !types.Assignable(w.enclosingFunc.Type(), returnType) {
			w.h.ReportTypeError(w.enclosingFunc.Type().Repr(), returnType.Repr(), pos.Line, pos.Col)
		}
	} else if w.enclosingFunc.Type() != types.Void {
		w.h.Error(
			report.SemanticError,
			fmt.Sprintf("Function must return a value of type %s", w.enclosingFunc.Type().Repr()),
			pos.Line, pos.Col,
		)
	}
}

// walkBlock checks a braced block inside a fresh anonymous scope.
func (w *Walker) walkBlock(b *ast.Block) {
	w.table.EnterScope("block")

	for _, stmt := range b.Stmts {
		w.walkStmt(stmt)
	}

	w.table.ExitScope()
}

// requireBool walks a condition expression and requires it to be bool.
// Unknown is silenced to avoid cascading errors.
func (w *Walker) requireBool(cond ast.Expr) {
	condType := w.walkExpr(cond)

	if condType != types.Bool && condType != types.Unknown {
		pos := cond.Position()
		w.h.ReportTypeError("bool", condType.Repr(), pos.Line, pos.Col)
	}
}
