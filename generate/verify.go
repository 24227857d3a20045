package generate

import (
	"fmt"

	"github.com/llir/llvm/ir"
	lltypes "github.com/llir/llvm/ir/types"
)

// Verify checks the structural invariants of a generated module before it is
// emitted: every basic block of every defined function must end in exactly
// one terminator, and no block of a function with a non-void return type may
// end in `ret void`.  Declarations without a body are not checked.  A
// verification failure indicates a generator bug and must be
// treated as fatal by the caller; ill-formed IR is never written out.
func Verify(mod *ir.Module) error {
	for _, f := range mod.Funcs {
		if len(f.Blocks) == 0 {
			// A declaration without a body: nothing to check.
			continue
		}

		for _, block := range f.Blocks {
			if block.Term == nil {
				return fmt.Errorf("function %s: basic block %s has no terminator", f.Name(), block.LocalName)
			}
		}

		// A function with a non-void return type must not fall off the end of
		// any block via `ret void`.
		if !lltypes.Equal(f.Sig.RetType, lltypes.Void) {
			for _, block := range f.Blocks {
				if ret, ok := block.Term.(*ir.TermRet); ok && ret.X == nil {
					return fmt.Errorf("function %s: void return in non-void function", f.Name())
				}
			}
		}
	}

	return nil
}
