package config

import (
	"fmt"
	"strings"

	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/rs/zerolog"
)

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type general config")
	}

	o.Silent = findFrom(m, "silent", parseBoolFn(), &err)
	if p := findFrom(m, "log-level", parseStringFn(checkLogLevel), &err); isOk(p, err) {
		o.LogLevel = valueOf(MustParseLogLevel(*p))
	}

	return err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: clonePtr(o.LogLevel),
		Silent:   clonePtr(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: cloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   cloneOr(overrides.Silent, origin.Silent),
	}
}

// ┌────────────────────┐
// │ DICTIONARY OPTIONS │
// └────────────────────┘
var _ merger[*DictionaryOptions] = (*DictionaryOptions)(nil)

type DictionaryOptions struct {
	Duplicates *tree.DuplicatePolicy `toml:"duplicates"`
	CacheSize  *uint16               `toml:"cache-size"`
}

func (o *DictionaryOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("'dictionary' must be table type")
	}

	if p := findFrom(m, "duplicates", parseStringFn(checkDuplicatePolicy), &err); isOk(p, err) {
		o.Duplicates = valueOf(MustParseDuplicatePolicy(*p))
	}

	o.CacheSize = findFrom(m, "cache-size", parseIntFn[uint16](checkUint16), &err)

	return err
}

func (o *DictionaryOptions) Clone() *DictionaryOptions {
	if o == nil {
		return nil
	}

	return &DictionaryOptions{
		Duplicates: clonePtr(o.Duplicates),
		CacheSize:  clonePtr(o.CacheSize),
	}
}

func (origin *DictionaryOptions) Merge(overrides *DictionaryOptions) *DictionaryOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &DictionaryOptions{
		Duplicates: cloneOr(overrides.Duplicates, origin.Duplicates),
		CacheSize:  cloneOr(overrides.CacheSize, origin.CacheSize),
	}
}

// ┌────────────────┐
// │ OUTPUT OPTIONS │
// └────────────────┘
var _ merger[*OutputOptions] = (*OutputOptions)(nil)

type OutputFormatType int

var availableOutputFormats = []string{"table", "plain"}

const (
	OutputFormatTable OutputFormatType = iota
	OutputFormatPlain
)

func (t OutputFormatType) String() string {
	if t >= 0 && int(t) < len(availableOutputFormats) {
		return availableOutputFormats[t]
	}
	return fmt.Sprintf("OutputFormatType(%d)", int(t))
}

type OutputOptions struct {
	Format  *OutputFormatType `toml:"format"`
	Metrics *bool             `toml:"metrics"`
}

func (o *OutputOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("'output' must be table type")
	}

	if p := findFrom(m, "format", parseStringFn(checkOutputFormat), &err); isOk(p, err) {
		o.Format = valueOf(MustParseOutputFormatType(*p))
	}

	o.Metrics = findFrom(m, "metrics", parseBoolFn(), &err)

	return err
}

func (o *OutputOptions) Clone() *OutputOptions {
	if o == nil {
		return nil
	}

	return &OutputOptions{
		Format:  clonePtr(o.Format),
		Metrics: clonePtr(o.Metrics),
	}
}

func (origin *OutputOptions) Merge(overrides *OutputOptions) *OutputOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &OutputOptions{
		Format:  cloneOr(overrides.Format, origin.Format),
		Metrics: cloneOr(overrides.Metrics, origin.Metrics),
	}
}

// ┌─────────┐
// │ PARSERS │
// └─────────┘
func MustParseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(err)
	}
	return level
}

func MustParseDuplicatePolicy(s string) tree.DuplicatePolicy {
	p, err := tree.ParseDuplicatePolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

func MustParseOutputFormatType(s string) OutputFormatType {
	for i, name := range availableOutputFormats {
		if name == s {
			return OutputFormatType(i)
		}
	}
	panic(fmt.Sprintf("unknown output format %q", s))
}
