package report

import (
	"bytes"
	"iter"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(m map[int]string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

func TestEntries(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	data := map[int]string{1: "d", 3: "b", 5: "a", 8: "c"}

	tcs := []struct {
		name   string
		format Format
		input  map[int]string
		assert func(t *testing.T, out string)
		count  int
	}{
		{
			name:   "plain",
			format: FormatPlain,
			input:  data,
			count:  4,
			assert: func(t *testing.T, out string) {
				assert.Equal(t, "1=d\n3=b\n5=a\n8=c\n", out)
			},
		},
		{
			name:   "table",
			format: FormatTable,
			input:  data,
			count:  4,
			assert: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSpace(out), "\n")
				require.Len(t, lines, 5)
				assert.Contains(t, lines[0], "KEY")
				assert.Contains(t, lines[1], "d")
				assert.Contains(t, lines[4], "8")
			},
		},
		{
			name:   "empty table",
			format: FormatTable,
			input:  map[int]string{},
			count:  0,
			assert: func(t *testing.T, out string) {
				assert.Equal(t, "(empty)\n", out)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Entries(&buf, tc.format, sorted(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.count, n)
			tc.assert(t, buf.String())
		})
	}
}

func TestLookup(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Lookup(&buf, 3, "b", true))
	require.NoError(t, Lookup(&buf, 5, "", false))

	assert.Equal(t, "search 3: b\nsearch 5: not found\n", buf.String())
}

func TestSummary(t *testing.T) {
	tcs := []struct {
		entries int
		depth   int
		expect  string
	}{
		{0, 0, "0 entries, depth 0\n"},
		{1, 1, "1 entry, depth 1\n"},
		{12345, 30, "12,345 entries, depth 30\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.expect, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Summary(&buf, tc.entries, tc.depth))
			assert.Equal(t, tc.expect, buf.String())
		})
	}
}

func TestBounds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bounds(&buf, 1, 8))
	require.NoError(t, Bounds(&buf, "apple", "pear"))
	assert.Equal(t, "keys 1 .. 8\nkeys apple .. pear\n", buf.String())
}
