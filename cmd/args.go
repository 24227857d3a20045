package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

const usage = `Usage: mc [--emit-ll] [--emit-o] [(--|-)O0|O1|O2|O3] [--debug] <input-file>

Flags:
------
--emit-ll   Write textual IR next to the input file (.ll extension).
--emit-o    Write a native object file next to the input file (.o extension).
-O0..-O3    Set the optimization level (default O2).  Both the single- and
            double-dash forms are accepted.
--debug     Print compilation phases and the scope tree.
`

// options holds the parsed command-line configuration of a compiler run.
type options struct {
	inputPath string

	emitLL  bool
	emitObj bool

	// optLevel is -1 until an -O flag or a configuration file sets it.
	optLevel int

	debug bool
}

// parseArgs parses the command-line arguments.  It returns an error for an
// unknown option or a missing input file; the caller prints the usage text
// and exits nonzero.
func parseArgs(args []string) (*options, error) {
	opts := &options{optLevel: -1}

	for _, arg := range args {
		switch {
		case arg == "--emit-ll":
			opts.emitLL = true
		case arg == "--emit-o":
			opts.emitObj = true
		case arg == "--debug":
			opts.debug = true
		case strings.HasPrefix(arg, "--O"):
			if err := opts.setOptLevel(arg[3:]); err != nil {
				return nil, err
			}
		case strings.HasPrefix(arg, "-O"):
			if err := opts.setOptLevel(arg[2:]); err != nil {
				return nil, err
			}
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown option: %s", arg)
		default:
			if opts.inputPath != "" {
				return nil, fmt.Errorf("input file specified multiple times")
			}

			opts.inputPath = arg
		}
	}

	if opts.inputPath == "" {
		return nil, fmt.Errorf("an input file must be specified")
	}

	return opts, nil
}

// setOptLevel parses the numeric part of an -O flag and clamps it to [0, 3].
func (opts *options) setOptLevel(level string) error {
	n, err := strconv.Atoi(level)
	if err != nil {
		return fmt.Errorf("invalid optimization level: %s", level)
	}

	if n < 0 {
		n = 0
	} else if n > 3 {
		n = 3
	}

	opts.optLevel = n

	return nil
}
