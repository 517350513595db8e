package dict

import (
	"errors"
	"iter"
	"sync"

	"github.com/VitiminV/bstdict/internal/cache"
	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/VitiminV/bstdict/internal/metrics"
	"github.com/rs/zerolog"
)

// Dictionary is an ordered key-value store.
type Dictionary[K comparable, V any] interface {
	// Insert stores value under key.
	Insert(key K, value V) error
	// Search returns the value stored under key.
	// It fails with tree.ErrKeyNotFound when the key is absent.
	Search(key K) (V, error)
	// Delete removes key and reports whether it was present.
	Delete(key K) (bool, error)
	// Depth returns the height of the underlying tree.
	Depth() int
	// Len returns the number of entries.
	Len() int
	// All yields every entry in ascending key order.
	All() iter.Seq2[K, V]
	// Drain yields every entry in ascending key order, removing each one.
	Drain() iter.Seq2[K, V]
	// Clear removes every entry.
	Clear()
}

var _ Dictionary[string, any] = (*TreeDictionary[string, any])(nil)

type options struct {
	cacheSize int
	metrics   *metrics.Collector
}

func Options() *options {
	return &options{}
}

// WithCacheSize enables a lookup cache of the given size. Zero disables it.
func (o *options) WithCacheSize(size int) *options {
	o.cacheSize = size
	return o
}

func (o *options) WithMetrics(m *metrics.Collector) *options {
	o.metrics = m
	return o
}

// TreeDictionary guards a tree.Tree with a single RWMutex. Writers (Insert,
// Delete, Drain, Clear) hold the write lock, readers the read lock.
type TreeDictionary[K comparable, V any] struct {
	mu      sync.RWMutex
	tree    *tree.Tree[K, V]
	lookups cache.Cache[K, V] // nil when disabled
	metrics *metrics.Collector
	logger  zerolog.Logger
}

// New wraps t. The dictionary takes ownership of t; callers must not use it
// directly afterwards.
func New[K comparable, V any](
	t *tree.Tree[K, V],
	logger zerolog.Logger,
	opts *options,
) *TreeDictionary[K, V] {
	if opts == nil {
		opts = Options()
	}

	d := &TreeDictionary[K, V]{
		tree:    t,
		metrics: opts.metrics,
		logger:  logger,
	}

	if opts.cacheSize > 0 {
		lookups := cache.NewLRUCache[K, V](opts.cacheSize)
		d.lookups = lookups
		d.logger.Debug().Int("capacity", lookups.Capacity()).Msg("lookup cache enabled")
	}

	d.metrics.SetEntries(t.Len())

	return d
}

func (d *TreeDictionary[K, V]) Insert(key K, value V) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.tree.Insert(key, value)
	d.observe(metrics.OpInsert, err)
	if err != nil {
		d.logFailure(metrics.OpInsert, key, err)
		return err
	}

	// The cache is keyed by the stored key, which a custom CompareFunc may
	// consider equal to key without being == to it.
	if d.lookups != nil && d.tree.DuplicatePolicy() == tree.DuplicateReplace {
		if stored, _, err := d.tree.Lookup(key); err == nil {
			d.lookups.Set(stored, value, cache.Options().WithUpdateExistingOnly(true))
		}
	}

	d.metrics.SetEntries(d.tree.Len())
	d.logger.Trace().Interface("key", key).Int("len", d.tree.Len()).Msg("insert")

	return nil
}

func (d *TreeDictionary[K, V]) Search(key K) (V, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.lookups != nil {
		if v, ok := d.lookups.Get(key); ok {
			d.metrics.ObserveCache(true)
			d.metrics.ObserveOperation(metrics.OpSearch, metrics.ResultOK)
			d.logger.Trace().Interface("key", key).Bool("cached", true).Msg("search")
			return v, nil
		}
		d.metrics.ObserveCache(false)
	}

	stored, v, err := d.tree.Lookup(key)
	d.observe(metrics.OpSearch, err)
	if err != nil {
		d.logFailure(metrics.OpSearch, key, err)
		return v, err
	}

	// Filled under the read lock so no writer can slip in between the tree
	// read and the cache write.
	if d.lookups != nil {
		d.lookups.Set(stored, v, cache.Options().WithSkipExisting(true))
	}

	d.logger.Trace().Interface("key", key).Bool("cached", false).Msg("search")

	return v, nil
}

func (d *TreeDictionary[K, V]) Delete(key K) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored, _, removed, err := d.tree.Extract(key)
	switch {
	case err != nil:
		d.observe(metrics.OpDelete, err)
		d.logFailure(metrics.OpDelete, key, err)
		return false, err
	case !removed:
		d.metrics.ObserveOperation(metrics.OpDelete, metrics.ResultNotFound)
	default:
		d.metrics.ObserveOperation(metrics.OpDelete, metrics.ResultOK)
	}

	if d.lookups != nil && removed {
		d.lookups.Remove(stored)
	}

	d.metrics.SetEntries(d.tree.Len())
	d.logger.Trace().Interface("key", key).Bool("removed", removed).Msg("delete")

	return removed, nil
}

func (d *TreeDictionary[K, V]) Depth() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Depth()
}

func (d *TreeDictionary[K, V]) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.tree.Len()
}

// Bounds returns the smallest and the largest key. ok is false when the
// dictionary is empty.
func (d *TreeDictionary[K, V]) Bounds() (lo, hi K, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	lo, _, ok = d.tree.Min()
	hi, _, _ = d.tree.Max()
	return lo, hi, ok
}

// All holds the read lock until the loop ends. The loop body must not call
// mutating methods of the same dictionary.
func (d *TreeDictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		d.mu.RLock()
		defer d.mu.RUnlock()

		for k, v := range d.tree.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Drain holds the write lock until the loop ends. The loop body must not
// call any method of the same dictionary.
func (d *TreeDictionary[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		d.mu.Lock()
		defer d.mu.Unlock()

		before := d.tree.Len()
		defer func() {
			if d.lookups != nil {
				d.lookups.Purge()
			}
			d.metrics.ObserveOperation(metrics.OpDrain, metrics.ResultOK)
			d.metrics.SetEntries(d.tree.Len())
			d.logger.Debug().
				Int("drained", before-d.tree.Len()).
				Int("remaining", d.tree.Len()).
				Msg("drain")
		}()

		for k, v := range d.tree.Drain() {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (d *TreeDictionary[K, V]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.tree.Len()
	d.tree.Clear()
	if d.lookups != nil {
		d.lookups.Purge()
	}

	d.metrics.ObserveOperation(metrics.OpClear, metrics.ResultOK)
	d.metrics.SetEntries(0)
	d.logger.Debug().Int("dropped", n).Msg("clear")
}

func (d *TreeDictionary[K, V]) observe(op string, err error) {
	d.metrics.ObserveOperation(op, resultOf(err))
}

func (d *TreeDictionary[K, V]) logFailure(op string, key K, err error) {
	switch {
	case errors.Is(err, tree.ErrKeyNotFound):
		d.logger.Trace().Interface("key", key).Msgf("%s; not found", op)
	case errors.Is(err, tree.ErrIncomparable):
		d.logger.Warn().Err(err).Interface("key", key).Msgf("%s; incomparable key", op)
	default:
		d.logger.Debug().Err(err).Interface("key", key).Msg(op)
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, tree.ErrKeyNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, tree.ErrIncomparable):
		return metrics.ResultIncomparable
	case errors.Is(err, tree.ErrDuplicateKey):
		return metrics.ResultDuplicate
	default:
		return metrics.ResultError
	}
}
