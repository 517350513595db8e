package tree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	tcs := []struct {
		name   string
		keys   []string
		expect []string
	}{
		{"empty", nil, nil},
		{"single", []string{"m"}, []string{"m"}},
		{"shuffled", []string{"m", "c", "x", "a", "e", "z"}, []string{"a", "c", "e", "m", "x", "z"}},
		{"ascending input", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"descending input", []string{"c", "b", "a"}, []string{"a", "b", "c"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tr := New[string, int](nil)
			for i, k := range tc.keys {
				require.NoError(t, tr.Insert(k, i))
			}

			assert.Equal(t, tc.expect, slices.Collect(tr.Keys()))
			// A second walk sees the same entries and the tree is intact.
			assert.Equal(t, tc.expect, slices.Collect(tr.Keys()))
			assert.Equal(t, len(tc.keys), tr.Len())
			requireValid(t, tr)
		})
	}
}

func TestAll_StopsEarly(t *testing.T) {
	tr := New[int, int](nil)
	for _, k := range []int{5, 2, 8, 1, 3, 9} {
		require.NoError(t, tr.Insert(k, k*k))
	}

	var seen []int
	for k := range tr.All() {
		seen = append(seen, k)
		if k == 3 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 6, tr.Len())
}

func TestValues(t *testing.T) {
	tr := New[int, string](nil)
	for _, e := range []entry{{2, "b"}, {1, "a"}, {3, "c"}} {
		require.NoError(t, tr.Insert(e.key, e.value))
	}

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(tr.Values()))
}

func TestDrain(t *testing.T) {
	tr := New[int, string](nil)
	for _, e := range []entry{{5, "a"}, {3, "b"}, {8, "c"}, {1, "d"}} {
		require.NoError(t, tr.Insert(e.key, e.value))
	}

	var values []string
	for _, v := range tr.Drain() {
		values = append(values, v)
	}

	assert.Equal(t, []string{"d", "b", "a", "c"}, values)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Depth())
	assert.Nil(t, tr.root)

	// Draining an empty tree yields nothing.
	for range tr.Drain() {
		t.Fatal("unexpected entry")
	}
}

func TestDrain_StopsEarly(t *testing.T) {
	tr := New[int, string](nil)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tr.Insert(k, ""))
	}

	var drained []int
	for k := range tr.Drain() {
		drained = append(drained, k)
		if len(drained) == 3 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3}, drained)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []int{4, 5, 6, 7}, slices.Collect(tr.Keys()))
	requireValid(t, tr)
}

func TestClear(t *testing.T) {
	tr := New[int, string](nil)
	for _, k := range []int{2, 1, 3} {
		require.NoError(t, tr.Insert(k, ""))
	}

	tr.Clear()

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Depth())
	assert.Empty(t, slices.Collect(tr.Keys()))

	require.NoError(t, tr.Insert(9, "again"))
	v, ok := tr.Get(9)
	assert.True(t, ok)
	assert.Equal(t, "again", v)
}
