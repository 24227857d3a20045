package symbols

import "mc/types"

// Symbol represents a named binding in a scope: a variable, a constant, or a
// function.
type Symbol interface {
	// Name returns the symbol's name.
	Name() string

	// Type returns the declared or inferred type of the symbol.  For
	// functions, this is the return type.
	Type() types.Type

	// Position returns the one-indexed source position where the symbol was
	// declared.
	Position() (line, col int)

	// Kind returns a human-readable kind label for the symbol.
	Kind() string
}

// symbolBase carries the state shared by all symbol variants.
type symbolBase struct {
	name      string
	typ       types.Type
	line, col int
}

func (sb *symbolBase) Name() string {
	return sb.name
}

func (sb *symbolBase) Type() types.Type {
	return sb.typ
}

func (sb *symbolBase) Position() (int, int) {
	return sb.line, sb.col
}

// -----------------------------------------------------------------------------

// VarSymbol represents a variable or constant binding.
type VarSymbol struct {
	symbolBase

	// Constant indicates whether the binding may be assigned after
	// declaration.
	Constant bool

	// Initialized indicates whether the variable has been assigned a value.
	Initialized bool
}

// NewVarSymbol creates a new variable symbol.
func NewVarSymbol(name string, typ types.Type, constant bool, line, col int) *VarSymbol {
	return &VarSymbol{
		symbolBase: symbolBase{name: name, typ: typ, line: line, col: col},
		Constant:   constant,
	}
}

func (vs *VarSymbol) Kind() string {
	if vs.Constant {
		return "constant"
	}

	return "variable"
}

// -----------------------------------------------------------------------------

// FuncSymbol represents a function binding.  The symbol's type is the
// function's return type.
type FuncSymbol struct {
	symbolBase

	// Params is the ordered formal parameter list.
	Params []*VarSymbol

	// LocalScope is the scope of the function body, once entered.  It may be
	// nil for functions without bodies (externs and builtins).
	LocalScope *Scope
}

// NewFuncSymbol creates a new function symbol with the given return type.
func NewFuncSymbol(name string, returnType types.Type, line, col int) *FuncSymbol {
	return &FuncSymbol{
		symbolBase: symbolBase{name: name, typ: returnType, line: line, col: col},
	}
}

// AddParam appends a formal parameter to the function's parameter list.
func (fs *FuncSymbol) AddParam(param *VarSymbol) {
	fs.Params = append(fs.Params, param)
}

func (fs *FuncSymbol) Kind() string {
	return "function"
}

// Signature renders the function's signature: `name(T1, T2) : R`.
func (fs *FuncSymbol) Signature() string {
	sig := fs.name + "("

	for i, param := range fs.Params {
		if i > 0 {
			sig += ", "
		}

		sig += param.Type().Repr()
	}

	return sig + ") : " + fs.typ.Repr()
}
