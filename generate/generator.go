package generate

import (
	"fmt"

	"mc/ast"
	"mc/report"

	"github.com/llir/llvm/ir"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// slot is a stack slot bound to a local variable name: the alloca address and
// the allocated element type.
type slot struct {
	ptr      value.Value
	elemType lltypes.Type
}

// Generator is responsible for converting a semantically checked program into
// an LLVM IR module.  Generation is assumed to always succeed: it only runs
// when semantic analysis produced zero errors, and any condition it cannot
// handle is a fatal error.
type Generator struct {
	// prog is the program being generated.
	prog *ast.Program

	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcs records every declared function prototype by name.
	funcs map[string]*ir.Func

	// enclosingFunc is the function whose body is being generated.
	enclosingFunc *ir.Func

	// block is the block the generator is currently positioned on.
	block *ir.Block

	// localScopes is the stack of name to stack-slot bindings paralleling the
	// lexical blocks of the source.
	localScopes []map[string]slot

	// blockCounts numbers the control-flow blocks of the current function so
	// their names stay unique within the function.
	blockCounts map[string]int
}

// NewGenerator creates a new generator for the given program.
func NewGenerator(prog *ast.Program) *Generator {
	return &Generator{
		prog:  prog,
		mod:   ir.NewModule(),
		funcs: make(map[string]*ir.Func),
	}
}

// Generate runs the main generation algorithm: every function prototype is
// declared first so that forward and mutually recursive calls resolve, then
// every body is emitted.  The caller is expected to verify the returned
// module before emitting it.
func (g *Generator) Generate() *ir.Module {
	// Phase 1: declare every function prototype, definitions and externs
	// alike.
	for _, def := range g.prog.Defs {
		switch v := def.(type) {
		case *ast.FuncDecl:
			g.declareProto(v.Name, v.Params, g.convType(v.ReturnType))
		case *ast.ExternFuncDecl:
			g.declareProto(v.Name, v.Params, g.convType(v.ReturnType))
		}
	}

	// Phase 2: emit every function body.
	for _, def := range g.prog.Defs {
		if fd, ok := def.(*ast.FuncDecl); ok {
			g.genFuncBody(fd)
		}
	}

	return g.mod
}

// declareProto creates a function of the given prototype in the module and
// records it by name.  Re-declaration is a no-op.
func (g *Generator) declareProto(name string, params []ast.Param, retType lltypes.Type) *ir.Func {
	if f, ok := g.funcs[name]; ok {
		return f
	}

	irParams := make([]*ir.Param, len(params))
	for i, param := range params {
		irParams[i] = ir.NewParam(param.Name, g.convType(param.Type))
	}

	f := g.mod.NewFunc(name, retType, irParams...)
	g.funcs[name] = f

	return f
}

// genFuncBody emits the body of a function definition.
func (g *Generator) genFuncBody(fd *ast.FuncDecl) {
	f := g.funcs[fd.Name]

	g.enclosingFunc = f
	g.blockCounts = make(map[string]int)
	g.block = f.NewBlock("entry")

	g.pushScope()

	// Every formal parameter gets a stack slot holding the incoming value so
	// the body can treat parameters like ordinary local variables.
	for i, param := range f.Params {
		alloca := g.block.NewAlloca(param.Typ)
		g.block.NewStore(param, alloca)
		g.defineLocal(fd.Params[i].Name, slot{ptr: alloca, elemType: param.Typ})
	}

	for _, stmt := range fd.Body {
		g.genStmt(stmt)
	}

	// A void function may fall off the end of its body.  For a returning
	// function an unterminated final block is sealed as unreachable.  The
	// semantic return check only requires some return statement in the body,
	// so this block is not always dead: with `if (b) { return 1; }` as the
	// whole body, the else path reaches it.
	if g.block.Term == nil {
		if lltypes.Equal(f.Sig.RetType, lltypes.Void) {
			g.block.NewRet(nil)
		} else {
			g.block.NewUnreachable()
		}
	}

	g.popScope()
}

// -----------------------------------------------------------------------------

// pushScope pushes a new local scope onto the scope stack.
func (g *Generator) pushScope() {
	g.localScopes = append(g.localScopes, make(map[string]slot))
}

// popScope pops a local scope off of the local scope stack.
func (g *Generator) popScope() {
	g.localScopes = g.localScopes[:len(g.localScopes)-1]
}

// defineLocal binds a local variable name to its stack slot in the current
// scope.
func (g *Generator) defineLocal(name string, sl slot) {
	g.localScopes[len(g.localScopes)-1][name] = sl
}

// lookup finds the stack slot bound to a name.  Scopes are searched in
// reverse order to implement shadowing.  A missing binding is fatal: semantic
// analysis has already resolved every name that reaches the generator.
func (g *Generator) lookup(name string) slot {
	for i := len(g.localScopes) - 1; i >= 0; i-- {
		if sl, ok := g.localScopes[i][name]; ok {
			return sl
		}
	}

	report.Fatal("code generator: local variable not found: %s", name)
	return slot{}
}

// appendBlock adds a new basic block with the given name prefix to the
// current function.  It does *not* reposition the generator on the new block.
func (g *Generator) appendBlock(prefix string) *ir.Block {
	n := g.blockCounts[prefix]
	g.blockCounts[prefix] = n + 1

	name := prefix
	if n > 0 {
		name = fmt.Sprintf("%s%d", prefix, n)
	}

	return g.enclosingFunc.NewBlock(name)
}
