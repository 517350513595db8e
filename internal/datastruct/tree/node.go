package tree

// node is a single key/value pair and its two owned subtrees.
type node[K, V any] struct {
	key   K
	value V

	// left holds keys that compare less than key, right holds greater ones.
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

type positionKind uint8

const (
	positionRoot positionKind = iota
	positionLeftChild
	positionRightChild
)

func (k positionKind) String() string {
	switch k {
	case positionRoot:
		return "root"
	case positionLeftChild:
		return "left-child"
	case positionRightChild:
		return "right-child"
	default:
		return "unknown"
	}
}

// position records where a node hangs in the tree: the root slot, or the
// left or right slot of parent. It is resolved during a walk and never
// stored in a node.
type position[K, V any] struct {
	kind   positionKind
	parent *node[K, V]
}

func rootPosition[K, V any]() position[K, V] {
	return position[K, V]{kind: positionRoot}
}

func leftOf[K, V any](parent *node[K, V]) position[K, V] {
	return position[K, V]{kind: positionLeftChild, parent: parent}
}

func rightOf[K, V any](parent *node[K, V]) position[K, V] {
	return position[K, V]{kind: positionRightChild, parent: parent}
}

// slot returns the link that owns the node at p.
func (p position[K, V]) slot(t *Tree[K, V]) **node[K, V] {
	switch p.kind {
	case positionLeftChild:
		return &p.parent.left
	case positionRightChild:
		return &p.parent.right
	default:
		return &t.root
	}
}
