package generate

import (
	"mc/ast"
	"mc/report"
)

// genStmt emits a single statement.
func (g *Generator) genStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		g.genVarDecl(v)
	case *ast.Assign:
		g.genAssign(v)
	case *ast.IfStmt:
		g.genIfStmt(v)
	case *ast.WhileStmt:
		g.genWhileStmt(v)
	case *ast.ForStmt:
		report.Fatal("code generator: for statement not implemented")
	case *ast.ReturnStmt:
		g.genReturnStmt(v)
	case *ast.Block:
		g.genBlock(v)
	case *ast.ExprStmt:
		g.genExpr(v.Expr)
	}
}

// genVarDecl allocates a stack slot of the declared type, evaluates the
// initializer, casts it to the slot type, stores it, and binds the name in
// the current local scope.
func (g *Generator) genVarDecl(vd *ast.VarDecl) {
	declType := g.convType(vd.DeclType)
	init := g.genExpr(vd.Init)
	alloca := g.block.NewAlloca(declType)
	g.block.NewStore(g.castToType(init, declType), alloca)
	g.defineLocal(vd.Name, slot{ptr: alloca, elemType: declType})
}

// genAssign stores a new value into an existing stack slot.
func (g *Generator) genAssign(as *ast.Assign) {
	sl := g.lookup(as.Name)
	val := g.genExpr(as.Value)
	g.block.NewStore(g.castToType(val, sl.elemType), sl.ptr)
}

// genBlock emits a braced block with its own local scope.
func (g *Generator) genBlock(b *ast.Block) {
	g.pushScope()

	for _, stmt := range b.Stmts {
		g.genStmt(stmt)
	}

	g.popScope()
}

// genIfStmt lowers an if statement into `then`, `else`, and `endif` blocks.
// An arm that is already terminated (by a return) does not branch to the end
// block.
func (g *Generator) genIfStmt(is *ast.IfStmt) {
	cond := g.genExpr(is.Cond)

	thenBlock := g.appendBlock("then")
	elseBlock := g.appendBlock("else")
	endBlock := g.appendBlock("endif")

	g.block.NewCondBr(cond, thenBlock, elseBlock)

	g.block = thenBlock
	g.genStmt(is.Then)
	if g.block.Term == nil {
		g.block.NewBr(endBlock)
	}

	g.block = elseBlock
	if is.Else != nil {
		g.genStmt(is.Else)
	}
	if g.block.Term == nil {
		g.block.NewBr(endBlock)
	}

	g.block = endBlock
}

// genWhileStmt lowers a while loop into `whilecond`, `whilebody`, and
// `whileend` blocks, with the body branching back to the condition block.
func (g *Generator) genWhileStmt(ws *ast.WhileStmt) {
	condBlock := g.appendBlock("whilecond")
	bodyBlock := g.appendBlock("whilebody")
	endBlock := g.appendBlock("whileend")

	g.block.NewBr(condBlock)

	g.block = condBlock
	cond := g.genExpr(ws.Cond)
	g.block.NewCondBr(cond, bodyBlock, endBlock)

	g.block = bodyBlock
	g.genStmt(ws.Body)
	if g.block.Term == nil {
		g.block.NewBr(condBlock)
	}

	g.block = endBlock
}

// genReturnStmt emits a return, casting the value to the enclosing function's
// return type.
func (g *Generator) genReturnStmt(rs *ast.ReturnStmt) {
	if rs.Value != nil {
		val := g.genExpr(rs.Value)
		g.block.NewRet(g.castToType(val, g.enclosingFunc.Sig.RetType))
	} else {
		g.block.NewRet(nil)
	}
}
