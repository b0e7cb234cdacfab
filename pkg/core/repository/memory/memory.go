// Package memory implements the repository contract on a plain in-process
// slice per entity. Collections are seeded at construction and guarded by a
// per-collection mutex; nothing survives a restart.
package memory

import (
	"fmt"
	"sync"

	apperrors "blogapp/pkg/common/errors"
	"blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
)

// collection is the shared slice store behind every entity repository.
// id and setID adapt it to the entity's ID field.
type collection[T any] struct {
	mu    sync.Mutex
	name  string
	items []T
	id    func(T) int
	setID func(T, int) T
}

func newCollection[T any](name string, seed []T, id func(T) int, setID func(T, int) T) *collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &collection[T]{name: name, items: items, id: id, setID: setID}
}

func (c *collection[T]) add(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := 1
	for _, it := range c.items {
		if c.id(it) >= next {
			next = c.id(it) + 1
		}
	}
	item = c.setID(item, next)
	c.items = append(c.items, item)
	return item, nil
}

func (c *collection[T]) update(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.id(it) == c.id(item) {
			c.items[i] = item
			return item, nil
		}
	}
	var zero T
	return zero, c.notFound(c.id(item))
}

func (c *collection[T]) delete(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.id(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return c.notFound(id)
}

func (c *collection[T]) getSingle(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if c.id(it) == id {
			return it, nil
		}
	}
	var zero T
	return zero, c.notFound(id)
}

// getMany returns a copy so callers can filter without holding the lock.
func (c *collection[T]) getMany() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	return snapshot, nil
}

func (c *collection[T]) notFound(id int) error {
	return fmt.Errorf("%s with id %d: %w", c.name, id, apperrors.ErrNotFound)
}

// NewRepositories builds one in-memory repository per entity from the given
// seed. Pass model.DefaultSeed() for the demo dataset or a zero Seed for
// empty collections.
func NewRepositories(seed model.Seed) repository.Repositories {
	return repository.Repositories{
		Users:    NewUserRepository(seed.Users),
		Posts:    NewPostRepository(seed.Posts),
		Comments: NewCommentRepository(seed.Comments),
	}
}
