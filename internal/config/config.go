// Package config reads the optional project configuration file that
// tweaks ambient translator behavior (indent width, which runtime
// shims to emit) without touching the core translation semantics. The
// CLI wires it in at the driver layer only; the translate package
// never reads files itself.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/go-pyjs/internal/codegen"
	"github.com/cwbudde/go-pyjs/internal/lexer"
)

// DefaultFileName is the project config file the CLI looks for in the
// current directory.
const DefaultFileName = ".pyjsrc.yaml"

// Config holds the optional, hand-editable project settings.
type Config struct {
	// TabWidth overrides the column width a tab advances to
	// (default 4).
	TabWidth int `yaml:"tabWidth"`

	// Shims toggles which runtime shims the emitter is allowed to
	// write. Both default to enabled.
	Shims ShimConfig `yaml:"shims"`
}

// ShimConfig toggles the two runtime shims the emitter can synthesize.
type ShimConfig struct {
	Range *bool `yaml:"range"`
	Str   *bool `yaml:"str"`
}

// RangeEnabled reports whether the range() shim should be emitted
// when referenced. Absent means enabled.
func (s ShimConfig) RangeEnabled() bool { return s.Range == nil || *s.Range }

// StrEnabled reports whether the str() shim should be emitted when
// referenced. Absent means enabled.
func (s ShimConfig) StrEnabled() bool { return s.Str == nil || *s.Str }

// Default returns the configuration used when no project file exists.
func Default() Config {
	return Config{TabWidth: 4}
}

// Load reads and parses path. A missing file is not an error — it
// just means the caller should use Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return cfg, nil
}

// LexerOptions translates the config into lexer construction options.
func (c Config) LexerOptions() []lexer.Option {
	return []lexer.Option{lexer.WithTabWidth(c.TabWidth)}
}

// CodegenOptions translates the config into generator construction
// options.
func (c Config) CodegenOptions() []codegen.Option {
	var opts []codegen.Option
	if !c.Shims.RangeEnabled() {
		opts = append(opts, codegen.WithoutRangeShim())
	}
	if !c.Shims.StrEnabled() {
		opts = append(opts, codegen.WithoutStrShim())
	}
	return opts
}
