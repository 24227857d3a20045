package report

import (
	"fmt"
	"strings"
)

// Handler accumulates the errors and warnings produced during a compilation
// run.  All phases of the compiler report through a shared handler; later
// phases consult it to decide whether to proceed.  Diagnostics are stored in
// the order they are reported, which is tree-walk order.
type Handler struct {
	// The accumulated errors and warnings, in input order.
	errors   []*Diagnostic
	warnings []*Diagnostic

	// The name of the source file currently being compiled.
	filename string

	// The lines of the source file, used to render diagnostics.
	sourceLines []string
}

// NewHandler creates a new empty diagnostic handler.
func NewHandler() *Handler {
	return &Handler{}
}

// SetSource sets the source text and file name used for rendering.
func (h *Handler) SetSource(source, filename string) {
	h.filename = filename
	h.sourceLines = strings.Split(source, "\n")
}

// Error reports an error of the given kind at the given position.
func (h *Handler) Error(kind Kind, msg string, line, col int) {
	h.errors = append(h.errors, &Diagnostic{
		Kind:     kind,
		Message:  msg,
		Line:     line,
		Col:      col,
		Filename: h.filename,
	})
}

// Warning reports a warning of the given kind at the given position.
func (h *Handler) Warning(kind Kind, msg string, line, col int) {
	h.warnings = append(h.warnings, &Diagnostic{
		Kind:     kind,
		Message:  msg,
		Line:     line,
		Col:      col,
		Filename: h.filename,
	})
}

// -----------------------------------------------------------------------------
// Typed shortcuts for the diagnostics the semantic phases commonly raise.

// ReportUndefinedSymbol reports a reference to a symbol that is not defined.
func (h *Handler) ReportUndefinedSymbol(name string, line, col int) {
	h.Error(UndefinedSymbol, fmt.Sprintf("Symbol '%s' is not defined", name), line, col)
}

// ReportRedefinedSymbol reports a duplicate definition within one scope.
func (h *Handler) ReportRedefinedSymbol(name string, line, col int) {
	h.Error(RedefinedSymbol, fmt.Sprintf("Symbol '%s' is already defined in this scope", name), line, col)
}

// ReportTypeError reports an expected/actual type mismatch.
func (h *Handler) ReportTypeError(expected, actual string, line, col int) {
	h.Error(TypeError, fmt.Sprintf("Expected type '%s' but got '%s'", expected, actual), line, col)
}

// ReportIncompatibleTypes reports an operator applied to unacceptable operand
// types.
func (h *Handler) ReportIncompatibleTypes(left, right, op string, line, col int) {
	h.Error(IncompatibleTypes, fmt.Sprintf("Cannot apply '%s' to types '%s' and '%s'", op, left, right), line, col)
}

// ReportFunctionNotFound reports a call whose callee is not a function.
func (h *Handler) ReportFunctionNotFound(name string, line, col int) {
	h.Error(FunctionNotFound, fmt.Sprintf("'%s' is not a function", name), line, col)
}

// ReportWrongArgumentCount reports a call with the wrong number of arguments.
func (h *Handler) ReportWrongArgumentCount(name string, expected, actual, line, col int) {
	h.Error(WrongArgumentCount, fmt.Sprintf("Function '%s' expects %d arguments but got %d", name, expected, actual), line, col)
}

// ReportInvalidAssignment reports an assignment whose target is not a
// variable.
func (h *Handler) ReportInvalidAssignment(name, reason string, line, col int) {
	h.Error(InvalidAssignment, fmt.Sprintf("Cannot assign to '%s': %s", name, reason), line, col)
}

// ReportUninitializedVariable warns about a variable that may be read before
// it is initialized.
func (h *Handler) ReportUninitializedVariable(name string, line, col int) {
	h.Warning(UninitializedVariable, fmt.Sprintf("Variable '%s' may be used before initialization", name), line, col)
}

// ReportConstantAssignment reports an assignment to a constant.
func (h *Handler) ReportConstantAssignment(name string, line, col int) {
	h.Error(ConstantAssignment, fmt.Sprintf("Cannot assign to constant '%s'", name), line, col)
}

// -----------------------------------------------------------------------------

// HasErrors returns whether any errors have been reported.
func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

// HasWarnings returns whether any warnings have been reported.
func (h *Handler) HasWarnings() bool {
	return len(h.warnings) > 0
}

// ErrorCount returns the number of reported errors.
func (h *Handler) ErrorCount() int {
	return len(h.errors)
}

// WarningCount returns the number of reported warnings.
func (h *Handler) WarningCount() int {
	return len(h.warnings)
}

// Errors returns the reported errors in report order.
func (h *Handler) Errors() []*Diagnostic {
	return h.errors
}

// Warnings returns the reported warnings in report order.
func (h *Handler) Warnings() []*Diagnostic {
	return h.warnings
}

// Clear discards all accumulated diagnostics.
func (h *Handler) Clear() {
	h.errors = nil
	h.warnings = nil
}
