package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// FileName is the name of the optional project configuration file, looked up
// next to the input source file.
const FileName = "mc.toml"

// Config holds project-level compilation defaults.  Explicit command-line
// flags always override the configured values.
type Config struct {
	// OptLevel is the default optimization level.  -1 means unset.
	OptLevel int `toml:"opt-level"`

	// EmitLL enables textual IR output by default.
	EmitLL bool `toml:"emit-ll"`

	// EmitObj enables object file output by default.
	EmitObj bool `toml:"emit-obj"`
}

// Load reads the configuration file from the directory containing the given
// input file.  A missing file yields the zero configuration; a malformed file
// is an error.
func Load(inputPath string) (*Config, error) {
	cfg := &Config{OptLevel: -1}

	path := filepath.Join(filepath.Dir(inputPath), FileName)

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return cfg, nil
}
