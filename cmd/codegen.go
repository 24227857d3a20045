package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/llir/llvm/ir"
)

// writeOutputs writes the requested outputs for a verified module.  With no
// emit flag set, the textual IR is printed to standard output.
func (c *Compiler) writeOutputs(mod *ir.Module) error {
	if !c.opts.emitLL && !c.opts.emitObj {
		fmt.Print(mod.String())
		return nil
	}

	if c.opts.emitLL {
		if err := writeOutputFile(withExt(c.opts.inputPath, ".ll"), mod.String()); err != nil {
			return err
		}
	}

	if c.opts.emitObj {
		return c.emitObjectFile(mod, withExt(c.opts.inputPath, ".o"))
	}

	return nil
}

// emitObjectFile compiles a module to a native object file using the LLVM
// tools: the standard `opt` pass pipeline at the selected level followed by
// `llc`.  The intermediate .ll file lives in a temporary directory that is
// removed on every exit path.
func (c *Compiler) emitObjectFile(mod *ir.Module, objPath string) error {
	tempDir, err := ioutil.TempDir("", "mc")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	modPath := filepath.Join(tempDir, "mod.ll")
	if err := writeOutputFile(modPath, mod.String()); err != nil {
		return err
	}

	if c.opts.optLevel > 0 {
		optPath := filepath.Join(tempDir, "mod.opt.ll")
		if err := runTool("opt", fmt.Sprintf("-O%d", c.opts.optLevel), "-S", "-o", optPath, modPath); err != nil {
			return err
		}

		modPath = optPath
	}

	return runTool("llc", "-filetype=obj", fmt.Sprintf("-O%d", c.opts.optLevel), "-o", objPath, modPath)
}

// runTool executes an external LLVM tool, surfacing its stderr on failure.
func runTool(name string, args ...string) error {
	tool := exec.Command(name, args...)

	stderrBuff := bytes.Buffer{}
	tool.Stderr = &stderrBuff

	if err := tool.Run(); err != nil {
		if stderrBuff.Len() > 0 {
			return fmt.Errorf("failed to run %s:\n%s", name, stderrBuff.String())
		}

		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	return nil
}

// writeOutputFile writes an output file for the compiler.
func writeOutputFile(path, content string) error {
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

// withExt replaces the extension of a path.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
