package symbols

import (
	"strings"
	"testing"

	"mc/types"
)

func TestBuiltins(t *testing.T) {
	table := NewTable()

	tests := []struct {
		name       string
		paramType  types.Type
		returnType types.Type
	}{
		{"print", types.String, types.Void},
		{"println", types.String, types.Void},
		{"toString", types.I32, types.String},
	}

	for _, tt := range tests {
		sym := table.Resolve(tt.name)
		if sym == nil {
			t.Fatalf("builtin %s not defined", tt.name)
		}

		funcSym, ok := sym.(*FuncSymbol)
		if !ok {
			t.Fatalf("builtin %s is not a function", tt.name)
		}

		if funcSym.Type() != tt.returnType {
			t.Errorf("%s: expected return type %s, got %s", tt.name, tt.returnType.Repr(), funcSym.Type().Repr())
		}
		if len(funcSym.Params) != 1 || funcSym.Params[0].Type() != tt.paramType {
			t.Errorf("%s: unexpected parameter list", tt.name)
		}
	}
}

func TestDefineAndRedefine(t *testing.T) {
	table := NewTable()

	if !table.Define(NewVarSymbol("x", types.I32, false, 1, 1)) {
		t.Fatalf("first definition failed")
	}

	// A second definition of the same name in the same scope fails.
	if table.Define(NewVarSymbol("x", types.I64, false, 2, 1)) {
		t.Errorf("expected duplicate definition to fail")
	}

	// The original binding is untouched.
	if table.Resolve("x").Type() != types.I32 {
		t.Errorf("duplicate definition clobbered the original symbol")
	}
}

func TestShadowing(t *testing.T) {
	table := NewTable()
	table.Define(NewVarSymbol("x", types.I32, false, 1, 1))

	table.EnterScope("inner")

	// The outer binding is visible before shadowing.
	if table.Resolve("x").Type() != types.I32 {
		t.Fatalf("outer binding not visible in inner scope")
	}

	// Shadowing is allowed: the inner scope has no local x yet.
	if table.ResolveLocal("x") != nil {
		t.Fatalf("resolve-local leaked into the outer scope")
	}

	table.Define(NewVarSymbol("x", types.F64, false, 2, 1))

	if table.Resolve("x").Type() != types.F64 {
		t.Errorf("inner binding does not shadow the outer one")
	}

	table.ExitScope()

	// After scope exit the outer symbol is restored.
	if table.Resolve("x").Type() != types.I32 {
		t.Errorf("outer binding not restored after scope exit")
	}
}

func TestExitScopeOnRootIsNoOp(t *testing.T) {
	table := NewTable()

	table.ExitScope()
	table.ExitScope()

	if table.CurrentScope() != table.GlobalScope() {
		t.Errorf("exiting the global scope moved the cursor")
	}

	if table.GlobalScope().Name() != "global" {
		t.Errorf("expected root scope named global, got %s", table.GlobalScope().Name())
	}
}

func TestAnonymousScopeNaming(t *testing.T) {
	table := NewTable()

	first := table.EnterScope("")
	table.ExitScope()
	second := table.EnterScope("")

	if first.Name() == second.Name() {
		t.Errorf("anonymous scopes share the name %s", first.Name())
	}
	if !strings.HasPrefix(first.Name(), "scope_") {
		t.Errorf("unexpected anonymous scope name %s", first.Name())
	}
}

func TestScopeTreeStructure(t *testing.T) {
	table := NewTable()

	table.EnterScope("f")
	table.EnterScope("if")
	table.ExitScope()
	table.EnterScope("else")
	table.ExitScope()
	table.ExitScope()

	children := table.GlobalScope().Children()
	if len(children) != 1 || children[0].Name() != "f" {
		t.Fatalf("expected one child scope f under global")
	}

	grandchildren := children[0].Children()
	if len(grandchildren) != 2 || grandchildren[0].Name() != "if" || grandchildren[1].Name() != "else" {
		t.Errorf("expected child scopes if and else under f")
	}

	if children[0].Parent() != table.GlobalScope() {
		t.Errorf("parent link broken")
	}
}

func TestDump(t *testing.T) {
	table := NewTable()
	table.EnterScope("main")
	table.Define(NewVarSymbol("x", types.I32, false, 1, 1))
	table.ExitScope()

	dump := table.Dump()

	for _, want := range []string{"Scope: global", "Scope: main", "variable: x : i32", "function: print : void"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
}
