package tree

import "iter"

// All returns an ascending in-order sequence of the entries. The walk uses
// an explicit stack and does not modify the tree; every call starts over.
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*node[K, V], 0, 16)
		cur := t.root

		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}

			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.key, n.value) {
				return
			}

			cur = n.right
		}
	}
}

// Keys returns the keys of All.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns the values of All, ordered by key.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns a consuming in-order sequence: each entry is removed from
// the tree right before it is yielded. Stopping early leaves the entries
// that were not yet yielded in place.
func (t *Tree[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for t.root != nil {
			k, v, _ := t.PopMin()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0. It is recomputed on every call.
func (t *Tree[K, V]) Depth() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *node[K, V]
		depth int
	}

	deepest := 0
	stack := []frame{{t.root, 1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > deepest {
			deepest = f.depth
		}

		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return deepest
}
