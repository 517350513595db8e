package dataset

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

type KeyType int

var availableKeyTypes = []string{"int", "string"}

const (
	KeyTypeInt KeyType = iota
	KeyTypeString
)

func (t KeyType) String() string {
	if t >= 0 && int(t) < len(availableKeyTypes) {
		return availableKeyTypes[t]
	}
	return fmt.Sprintf("KeyType(%d)", int(t))
}

func parseKeyType(s string) (KeyType, error) {
	for i, name := range availableKeyTypes {
		if name == s {
			return KeyType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown key type %q, expected one of %v", s, availableKeyTypes)
}

// Entry is one key/value pair of a dataset. Key holds an int64 or a string,
// depending on the dataset's KeyType.
type Entry struct {
	Key   any
	Value string
}

// Pair is an Entry with a typed key.
type Pair[K int64 | string] struct {
	Key   K
	Value string
}

// Dataset is the list of entries to load into a dictionary.
//
//	key-type = "int"
//	[[entries]]
//	key = 5
//	value = "a"
type Dataset struct {
	KeyType KeyType
	Entries []Entry
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ds, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Parse decodes and validates a dataset document.
func Parse(doc string) (*Dataset, error) {
	var ds Dataset
	if _, err := toml.Decode(doc, &ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (d *Dataset) UnmarshalTOML(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("dataset must be a table")
	}

	d.KeyType = KeyTypeInt
	if raw, ok := m["key-type"]; ok {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("field 'key-type': expected string, got %T", raw)
		}

		kt, err := parseKeyType(s)
		if err != nil {
			return fmt.Errorf("field 'key-type': %w", err)
		}
		d.KeyType = kt
	}

	rawEntries, ok := m["entries"]
	if !ok {
		d.Entries = nil
		return nil
	}

	list, ok := rawEntries.([]map[string]any)
	if !ok {
		anyList, isList := rawEntries.([]any)
		if !isList {
			return fmt.Errorf("field 'entries' must be an array of tables")
		}

		list = make([]map[string]any, 0, len(anyList))
		for i, item := range anyList {
			table, isTable := item.(map[string]any)
			if !isTable {
				return fmt.Errorf("entries[%d]: must be a table, got %T", i, item)
			}
			list = append(list, table)
		}
	}

	// Report every bad entry at once instead of stopping at the first.
	var errs *multierror.Error
	entries := make([]Entry, 0, len(list))
	for i, item := range list {
		e, err := d.parseEntry(item)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("entries[%d]: %w", i, err))
			continue
		}
		entries = append(entries, e)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	d.Entries = entries
	return nil
}

func (d *Dataset) parseEntry(m map[string]any) (Entry, error) {
	rawKey, ok := m["key"]
	if !ok {
		return Entry{}, fmt.Errorf("missing 'key'")
	}

	rawValue, ok := m["value"]
	if !ok {
		return Entry{}, fmt.Errorf("missing 'value'")
	}

	value, ok := rawValue.(string)
	if !ok {
		return Entry{}, fmt.Errorf("'value' must be a string, got %T", rawValue)
	}

	switch d.KeyType {
	case KeyTypeString:
		key, ok := rawKey.(string)
		if !ok {
			return Entry{}, fmt.Errorf("'key' must be a string, got %T", rawKey)
		}
		return Entry{Key: key, Value: value}, nil
	default:
		key, ok := rawKey.(int64)
		if !ok {
			return Entry{}, fmt.Errorf("'key' must be an integer, got %T", rawKey)
		}
		return Entry{Key: key, Value: value}, nil
	}
}

// Pairs returns the entries with typed keys. K must match the dataset's
// KeyType.
func Pairs[K int64 | string](d *Dataset) ([]Pair[K], error) {
	if err := checkKeyType[K](d.KeyType); err != nil {
		return nil, err
	}

	return lo.Map(d.Entries, func(e Entry, _ int) Pair[K] {
		return Pair[K]{Key: e.Key.(K), Value: e.Value}
	}), nil
}

// ParseKey converts a command line argument to a key of type K.
func ParseKey[K int64 | string](s string) (K, error) {
	var key K
	switch p := any(&key).(type) {
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return key, fmt.Errorf("invalid integer key %q", s)
		}
		*p = n
	case *string:
		*p = s
	}
	return key, nil
}

func checkKeyType[K int64 | string](kt KeyType) error {
	var zero K
	switch any(zero).(type) {
	case int64:
		if kt != KeyTypeInt {
			return fmt.Errorf("dataset key type is %s, requested int", kt)
		}
	case string:
		if kt != KeyTypeString {
			return fmt.Errorf("dataset key type is %s, requested string", kt)
		}
	}
	return nil
}
