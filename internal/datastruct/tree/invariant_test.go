package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// check walks the whole tree and verifies the ordering invariant and the
// cached element count.
func (t *Tree[K, V]) check() error {
	type frame struct {
		n      *node[K, V]
		lo, hi *K
	}

	count := 0
	stack := []frame{{n: t.root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n == nil {
			continue
		}
		count++

		if f.lo != nil {
			c, err := t.compare(f.n.key, *f.lo)
			if err != nil || c <= 0 {
				return fmt.Errorf("key %v is not greater than lower bound %v", f.n.key, *f.lo)
			}
		}

		if f.hi != nil {
			c, err := t.compare(f.n.key, *f.hi)
			if err != nil || c >= 0 {
				return fmt.Errorf("key %v is not less than upper bound %v", f.n.key, *f.hi)
			}
		}

		key := f.n.key
		stack = append(stack,
			frame{n: f.n.left, lo: f.lo, hi: &key},
			frame{n: f.n.right, lo: &key, hi: f.hi},
		)

		if count > t.size {
			return fmt.Errorf("more nodes than the recorded size %d", t.size)
		}
	}

	if count != t.size {
		return fmt.Errorf("found %d nodes, recorded size is %d", count, t.size)
	}

	return nil
}

func requireValid[K, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	require.NoError(t, tr.check())
}
