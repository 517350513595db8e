package tree

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Search when no node holds the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIncomparable is wrapped by every error caused by a pair of keys
	// that cannot be ordered relative to each other.
	ErrIncomparable = errors.New("keys are not comparable")

	// ErrDuplicateKey is returned by Insert under DuplicateReject.
	ErrDuplicateKey = errors.New("duplicate key")
)

// CompareFunc is a three-way comparison.
// It returns a negative number when a < b, zero when a == b and a positive
// number when a > b. A non-nil error means the pair has no defined order.
type CompareFunc[K any] func(a, b K) (int, error)

// orderedCompare is the CompareFunc used by New. NaN has no position in the
// order, so any comparison involving it is rejected.
func orderedCompare[K cmp.Ordered](a, b K) (int, error) {
	if isNaN(a) || isNaN(b) {
		return 0, fmt.Errorf("%w: %v and %v", ErrIncomparable, a, b)
	}
	return cmp.Compare(a, b), nil
}

func isNaN[K cmp.Ordered](x K) bool {
	return x != x
}

// compareKeys wraps a failing CompareFunc so the caller always gets
// ErrIncomparable in the chain.
func compareKeys[K any](compare CompareFunc[K], a, b K) (int, error) {
	c, err := compare(a, b)
	if err == nil {
		return c, nil
	}

	if errors.Is(err, ErrIncomparable) {
		return 0, err
	}

	return 0, fmt.Errorf("%w: %v and %v: %w", ErrIncomparable, a, b, err)
}
