package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pterm/pterm"

	"mc/config"
	"mc/generate"
	"mc/report"
	"mc/symbols"
	"mc/syntax"
	"mc/walk"
)

// Compiler represents the state of a single compilation run: one input file
// in, diagnostics and at most one IR module out.
type Compiler struct {
	opts *options

	// h is the diagnostic handler shared by every phase.
	h *report.Handler

	// table is the symbol table built during semantic analysis.
	table *symbols.Table
}

// Run parses the command-line arguments and executes a compilation run,
// returning the process exit code: 0 on success, 1 on a usage error or a
// failed compilation.
func Run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "argument error: %s\n\n", err)
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	c := &Compiler{
		opts:  opts,
		h:     report.NewHandler(),
		table: symbols.NewTable(),
	}

	return c.Compile()
}

// Compile executes the compilation pipeline on the configured input file.
func (c *Compiler) Compile() int {
	// Apply configuration file defaults for anything the command line left
	// unset.
	cfg, err := config.Load(c.opts.inputPath)
	if err != nil {
		report.Fatal("%s", err)
	}

	c.opts.emitLL = c.opts.emitLL || cfg.EmitLL
	c.opts.emitObj = c.opts.emitObj || cfg.EmitObj
	if c.opts.optLevel < 0 {
		if cfg.OptLevel >= 0 {
			c.opts.optLevel = cfg.OptLevel
		} else {
			c.opts.optLevel = 2
		}
	}

	source, err := ioutil.ReadFile(c.opts.inputPath)
	if err != nil {
		c.h.Error(report.SyntaxError, fmt.Sprintf("Cannot read file: %s", err), 0, 0)
		return c.finish()
	}

	c.h.SetSource(string(source), c.opts.inputPath)

	// Phase 1: lexical and syntax analysis.
	c.logPhase("Phase 1: Lexical and Syntax Analysis")
	prog := syntax.NewParser(string(source), c.h).Parse()
	if c.h.HasErrors() {
		return c.finish()
	}

	// Phase 2: semantic analysis.
	c.logPhase("Phase 2: Semantic Analysis")
	walk.NewWalker(c.table, c.h).WalkProgram(prog)

	if c.opts.debug {
		fmt.Fprint(os.Stderr, c.table.Dump())
	}

	if c.h.HasErrors() {
		return c.finish()
	}

	// Phase 3: code generation.  The generator only runs on semantically
	// clean programs.
	c.logPhase("Phase 3: Code Generation")
	mod := generate.NewGenerator(prog).Generate()

	if err := generate.Verify(mod); err != nil {
		report.Fatal("module verification failed: %s", err)
	}

	if err := c.writeOutputs(mod); err != nil {
		report.Fatal("%s", err)
	}

	return c.finish()
}

// finish renders the accumulated diagnostics and the closing summary line and
// returns the process exit code.
func (c *Compiler) finish() int {
	c.h.PrintAll()
	c.h.PrintSummary()

	if c.h.HasErrors() {
		return 1
	}

	return 0
}

// logPhase prints a phase progress message when running with --debug.
func (c *Compiler) logPhase(msg string) {
	if c.opts.debug {
		fmt.Fprintln(os.Stderr, pterm.FgLightGreen.Sprint(msg))
	}
}
