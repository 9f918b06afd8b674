package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Spok95/techvault/internal/infra/metrics"
)

// Collection — типизированная коллекция поверх KV. Любое изменение читает
// коллекцию целиком, меняет её в памяти и записывает обратно.
// Внутри процесса изменения одной коллекции идут по очереди; между процессами
// побеждает последняя запись.
type Collection[T Identified] struct {
	kv       KV
	key      string
	defaults func() []T
	mu       sync.Mutex
}

func NewCollection[T Identified](kv KV, key string, defaults func() []T) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, defaults: defaults}
}

func (c *Collection[T]) Key() string { return c.key }

// LoadAll возвращает сохранённую коллекцию; если ключа нет — записывает
// коллекцию по умолчанию и возвращает её.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load(ctx)
	observe(c.key, "load", err)
	return items, err
}

// SaveAll перезаписывает коллекцию без всяких проверок.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.save(ctx, items)
	observe(c.key, "save", err)
	return err
}

func (c *Collection[T]) Find(ctx context.Context, id int64) (T, error) {
	var zero T
	items, err := c.LoadAll(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, fmt.Errorf("%s #%d: %w", c.key, id, ErrNotFound)
	}
	return items[i], nil
}

// Create выдаёт следующий id (max+1) и дописывает запись в конец коллекции.
func (c *Collection[T]) Create(ctx context.Context, build func(id int64) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	rec, err := build(nextID(items))
	if err != nil {
		return zero, err
	}
	if indexOf(items, rec.RecordID()) >= 0 {
		return zero, fmt.Errorf("%s: duplicate id %d", c.key, rec.RecordID())
	}
	items = append(items, rec)
	err = c.save(ctx, items)
	observe(c.key, "create", err)
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// CreateMany дописывает пачку записей одной записью в KV: либо сохраняются
// все, либо ни одной. build вызывается с очередным id для каждой строки.
func (c *Collection[T]) CreateMany(ctx context.Context, n int, build func(i int, id int64) (T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	id := nextID(items)
	added := make([]T, 0, n)
	for i := 0; i < n; i++ {
		rec, err := build(i, id)
		if err != nil {
			return nil, err
		}
		if indexOf(items, rec.RecordID()) >= 0 {
			return nil, fmt.Errorf("%s: duplicate id %d", c.key, rec.RecordID())
		}
		items = append(items, rec)
		added = append(added, rec)
		if rec.RecordID() >= id {
			id = rec.RecordID() + 1
		}
	}
	err = c.save(ctx, items)
	observe(c.key, "create_many", err)
	if err != nil {
		return nil, err
	}
	return added, nil
}

// Update заменяет запись на месте, порядок коллекции не меняется.
func (c *Collection[T]) Update(ctx context.Context, id int64, fn func(cur T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, fmt.Errorf("%s #%d: %w", c.key, id, ErrNotFound)
	}
	next, err := fn(items[i])
	if err != nil {
		return zero, err
	}
	if next.RecordID() != id {
		return zero, fmt.Errorf("%s #%d: id cannot change", c.key, id)
	}
	items[i] = next
	err = c.save(ctx, items)
	observe(c.key, "update", err)
	if err != nil {
		return zero, err
	}
	return next, nil
}

// Delete удаляет запись, остальные сохраняют исходный порядок.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(items, id)
	if i < 0 {
		return fmt.Errorf("%s #%d: %w", c.key, id, ErrNotFound)
	}
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:i]...)
	rest = append(rest, items[i+1:]...)
	err = c.save(ctx, rest)
	observe(c.key, "delete", err)
	return err
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, ErrNoValue) {
		var seed []T
		if c.defaults != nil {
			seed = c.defaults()
		}
		if seed == nil {
			seed = []T{}
		}
		if err := c.save(ctx, seed); err != nil {
			return nil, fmt.Errorf("seed %s: %w", c.key, err)
		}
		observe(c.key, "seed", nil)
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.key, err)
	}
	if items == nil {
		// "null" — тоже битые данные, а не пустая коллекция
		return nil, fmt.Errorf("%w: %s: null payload", ErrCorrupt, c.key)
	}
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.RecordID()]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate id %d", ErrCorrupt, c.key, it.RecordID())
		}
		seen[it.RecordID()] = struct{}{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func nextID[T Identified](items []T) int64 {
	var top int64
	for _, it := range items {
		if it.RecordID() > top {
			top = it.RecordID()
		}
	}
	return top + 1
}

func indexOf[T Identified](items []T, id int64) int {
	for i, it := range items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

func observe(key, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.StoreOps.WithLabelValues(key, op, result).Inc()
}
