package tree

import (
	"cmp"
	"fmt"
)

// DuplicatePolicy decides what Insert does with a key that is already stored.
type DuplicatePolicy uint8

const (
	// DuplicateReplace overwrites the stored value.
	DuplicateReplace DuplicatePolicy = iota
	// DuplicateIgnore keeps the stored value and reports success.
	DuplicateIgnore
	// DuplicateReject keeps the stored value and returns ErrDuplicateKey.
	DuplicateReject
)

var availableDuplicatePolicies = []string{"replace", "ignore", "reject"}

func (p DuplicatePolicy) String() string {
	if int(p) < len(availableDuplicatePolicies) {
		return availableDuplicatePolicies[p]
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", p)
}

// ParseDuplicatePolicy is the inverse of DuplicatePolicy.String.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	for i, name := range availableDuplicatePolicies {
		if name == s {
			return DuplicatePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown duplicate policy %q", s)
}

// options holds the construction settings of a Tree.
type options struct {
	duplicates DuplicatePolicy
}

func Options() *options {
	return &options{}
}

func (o *options) WithDuplicatePolicy(p DuplicatePolicy) *options {
	o.duplicates = p
	return o
}

// Tree is an ordered dictionary backed by an unbalanced binary search tree.
// Smaller keys go left, larger keys go right, so an in-order walk yields
// ascending keys. A Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	root    *node[K, V]
	compare CompareFunc[K]
	size    int
	opts    options
}

// New creates an empty tree over a naturally ordered key type.
func New[K cmp.Ordered, V any](opts *options) *Tree[K, V] {
	return NewFunc[K, V](orderedCompare[K], opts)
}

// NewFunc creates an empty tree ordered by compare.
func NewFunc[K, V any](compare CompareFunc[K], opts *options) *Tree[K, V] {
	if compare == nil {
		panic("tree: nil CompareFunc")
	}

	if opts == nil {
		opts = Options()
	}

	return &Tree[K, V]{compare: compare, opts: *opts}
}

// DuplicatePolicy reports the policy the tree was built with.
func (t *Tree[K, V]) DuplicatePolicy() DuplicatePolicy {
	return t.opts.duplicates
}

// Insert stores value under key. A new key adds exactly one leaf; an
// existing key is handled according to the tree's DuplicatePolicy.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.root == nil {
		t.root = newNode(key, value)
		t.size++
		return nil
	}

	cur := t.root
	for {
		c, err := compareKeys(t.compare, key, cur.key)
		if err != nil {
			return err
		}

		switch {
		case c < 0:
			if cur.left == nil {
				cur.left = newNode(key, value)
				t.size++
				return nil
			}
			cur = cur.left
		case c > 0:
			if cur.right == nil {
				cur.right = newNode(key, value)
				t.size++
				return nil
			}
			cur = cur.right
		default:
			return t.onDuplicate(cur, value)
		}
	}
}

func (t *Tree[K, V]) onDuplicate(n *node[K, V], value V) error {
	switch t.opts.duplicates {
	case DuplicateIgnore:
		return nil
	case DuplicateReject:
		return fmt.Errorf("%w: %v", ErrDuplicateKey, n.key)
	default:
		n.value = value
		return nil
	}
}

// find walks to the node holding key. It returns the node (nil if absent)
// and the position the node occupies, or would occupy.
func (t *Tree[K, V]) find(key K) (*node[K, V], position[K, V], error) {
	pos := rootPosition[K, V]()
	cur := t.root

	for cur != nil {
		c, err := compareKeys(t.compare, key, cur.key)
		if err != nil {
			return nil, pos, err
		}

		switch {
		case c < 0:
			pos, cur = leftOf(cur), cur.left
		case c > 0:
			pos, cur = rightOf(cur), cur.right
		default:
			return cur, pos, nil
		}
	}

	return nil, pos, nil
}

// Search returns the value stored under key, or ErrKeyNotFound.
func (t *Tree[K, V]) Search(key K) (V, error) {
	_, v, err := t.Lookup(key)
	return v, err
}

// Lookup is Search that also returns the key as it is stored. The two keys
// compare equal but may differ under == when the tree has a custom
// CompareFunc.
func (t *Tree[K, V]) Lookup(key K) (K, V, error) {
	n, _, err := t.find(key)
	if err != nil {
		var (
			k K
			v V
		)
		return k, v, err
	}

	if n == nil {
		var (
			k K
			v V
		)
		return k, v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return n.key, n.value, nil
}

// Get is Search without the error detail. Incomparable keys report false.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	v, err := t.Search(key)
	return v, err == nil
}

// Contains reports whether key is stored.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of stored entries.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Clear drops every entry.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}
