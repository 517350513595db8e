package config

import (
	"fmt"

	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/rs/zerolog"
)

type merger[T any] interface {
	cloner[T]
	Merge(overrides T) T
}

type cloner[T any] interface {
	Clone() T
}

var _ merger[*Config] = (*Config)(nil)

// Config is the merged tool configuration. Every section is always non-nil
// in a Config produced by NewConfig or Merge on top of it.
type Config struct {
	General    *GeneralOptions    `toml:"general"`
	Dictionary *DictionaryOptions `toml:"dictionary"`
	Output     *OutputOptions     `toml:"output"`
}

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: valueOf(zerolog.InfoLevel),
			Silent:   valueOf(false),
		},
		Dictionary: &DictionaryOptions{
			Duplicates: valueOf(tree.DuplicateReplace),
			CacheSize:  valueOf(uint16(0)),
		},
		Output: &OutputOptions{
			Format:  valueOf(OutputFormatTable),
			Metrics: valueOf(false),
		},
	}
}

func (c *Config) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type config")
	}

	c.General = findStructFrom[GeneralOptions](m, "general", &err)
	c.Dictionary = findStructFrom[DictionaryOptions](m, "dictionary", &err)
	c.Output = findStructFrom[OutputOptions](m, "output", &err)

	return err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General:    c.General.Clone(),
		Dictionary: c.Dictionary.Clone(),
		Output:     c.Output.Clone(),
	}
}

// Merge returns a new Config where every value set in overrides replaces
// the one in origin.
func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General:    origin.General.Merge(overrides.General),
		Dictionary: origin.Dictionary.Merge(overrides.Dictionary),
		Output:     origin.Output.Merge(overrides.Output),
	}
}

// LogLevel, Silent, ... are shortcuts used at wiring time; they assume a
// Config built on top of NewConfig.

func (c *Config) LogLevel() zerolog.Level {
	return valueOr(c.General.LogLevel, zerolog.InfoLevel)
}

func (c *Config) Silent() bool {
	return valueOr(c.General.Silent, false)
}

func (c *Config) Duplicates() tree.DuplicatePolicy {
	return valueOr(c.Dictionary.Duplicates, tree.DuplicateReplace)
}

func (c *Config) CacheSize() int {
	return int(valueOr(c.Dictionary.CacheSize, 0))
}

func (c *Config) Format() OutputFormatType {
	return valueOr(c.Output.Format, OutputFormatTable)
}

func (c *Config) Metrics() bool {
	return valueOr(c.Output.Metrics, false)
}

func clonePtr[T any](x *T) *T {
	if x == nil {
		return nil
	}
	v := *x
	return &v
}

func cloneOr[T any](x *T, fallback *T) *T {
	if x == nil {
		return clonePtr(fallback)
	}
	return clonePtr(x)
}

func valueOf[T any](v T) *T {
	return &v
}

func valueOr[T any](x *T, v T) T {
	if x == nil {
		return v
	}
	return *x
}
