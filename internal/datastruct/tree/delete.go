package tree

// Delete removes the entry stored under key. It reports whether an entry was
// removed; deleting an absent key leaves the tree untouched.
func (t *Tree[K, V]) Delete(key K) (bool, error) {
	_, _, removed, err := t.Extract(key)
	return removed, err
}

// Extract is Delete that also returns the removed entry, with the key as it
// was stored.
func (t *Tree[K, V]) Extract(key K) (K, V, bool, error) {
	var (
		k K
		v V
	)

	target, pos, err := t.find(key)
	if err != nil {
		return k, v, false, err
	}

	if target == nil {
		return k, v, false, nil
	}

	slot := pos.slot(t)

	switch {
	case target.left == nil:
		*slot = target.right
	case target.right == nil:
		*slot = target.left
	default:
		// The smallest key of the right subtree is larger than every key on
		// the left and smaller than the rest of the right, so it can take
		// target's place without breaking the order.
		successor := popMin(&target.right)
		successor.left = target.left
		successor.right = target.right
		*slot = successor
	}

	target.left, target.right = nil, nil
	t.size--

	return target.key, target.value, true, nil
}

// popMin detaches the smallest node of the subtree owned by slot. The
// node's right subtree is promoted into the link the node occupied, and the
// node comes back with both links cleared. slot must not be empty.
func popMin[K, V any](slot **node[K, V]) *node[K, V] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}

	smallest := *slot
	*slot = smallest.right
	smallest.right = nil

	return smallest
}

// PopMin removes and returns the entry with the smallest key.
func (t *Tree[K, V]) PopMin() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}

	n := popMin(&t.root)
	t.size--

	return n.key, n.value, true
}
