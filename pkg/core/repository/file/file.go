// Package file implements the repository contract on flat JSON files, one
// array file per entity (users.json, posts.json, comments.json) under a
// configured directory. Every operation is a whole-file read-deserialize /
// mutate / re-serialize-write cycle, serialized by a per-file mutex so
// concurrent requests cannot interleave a read-modify-write.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "blogapp/pkg/common/errors"
	"blogapp/pkg/core/repository"
)

// store is the shared file-backed collection behind every entity repository.
type store[T any] struct {
	mu    sync.Mutex
	name  string
	path  string
	id    func(T) int
	setID func(T, int) T
}

// newStore bootstraps the file with an empty array when it does not exist.
func newStore[T any](name, path string, id func(T) int, setID func(T, int) T) (*store[T], error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &store[T]{name: name, path: path, id: id, setID: setID}, nil
}

func (s *store[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStorageInternal, s.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperrors.ErrStorageInternal, s.path, err)
	}
	return items, nil
}

func (s *store[T]) save(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperrors.ErrStorageInternal, s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStorageInternal, s.path, err)
	}
	return nil
}

func (s *store[T]) add(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	items, err := s.load()
	if err != nil {
		return zero, err
	}
	next := 1
	for _, it := range items {
		if s.id(it) >= next {
			next = s.id(it) + 1
		}
	}
	item = s.setID(item, next)
	items = append(items, item)
	if err := s.save(items); err != nil {
		return zero, err
	}
	return item, nil
}

func (s *store[T]) update(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	items, err := s.load()
	if err != nil {
		return zero, err
	}
	for i, it := range items {
		if s.id(it) == s.id(item) {
			items[i] = item
			if err := s.save(items); err != nil {
				return zero, err
			}
			return item, nil
		}
	}
	return zero, s.notFound(s.id(item))
}

func (s *store[T]) delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for i, it := range items {
		if s.id(it) == id {
			items = append(items[:i], items[i+1:]...)
			return s.save(items)
		}
	}
	return s.notFound(id)
}

func (s *store[T]) getSingle(id int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	items, err := s.load()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if s.id(it) == id {
			return it, nil
		}
	}
	return zero, s.notFound(id)
}

func (s *store[T]) getMany() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *store[T]) notFound(id int) error {
	return fmt.Errorf("%s with id %d: %w", s.name, id, apperrors.ErrNotFound)
}

// NewRepositories builds the three file-backed repositories under dir,
// creating the directory and missing array files as needed.
func NewRepositories(dir string) (repository.Repositories, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return repository.Repositories{}, fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	users, err := NewUserRepository(filepath.Join(dir, "users.json"))
	if err != nil {
		return repository.Repositories{}, err
	}
	posts, err := NewPostRepository(filepath.Join(dir, "posts.json"))
	if err != nil {
		return repository.Repositories{}, err
	}
	comments, err := NewCommentRepository(filepath.Join(dir, "comments.json"))
	if err != nil {
		return repository.Repositories{}, err
	}

	return repository.Repositories{Users: users, Posts: posts, Comments: comments}, nil
}
