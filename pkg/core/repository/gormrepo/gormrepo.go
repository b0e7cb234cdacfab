// Package gormrepo implements the repository contract against MySQL through
// GORM. It exists to prove the contract swappable beyond process-local
// storage; observable semantics match the memory and file backends,
// including the max+1 ID assignment policy.
package gormrepo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "blogapp/pkg/common/errors"
	"blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
)

// repo is the shared GORM-backed collection behind every entity repository.
type repo[T any] struct {
	db    *gorm.DB
	name  string
	setID func(T, int) T
}

// add computes the next ID inside the insert transaction instead of relying
// on AUTO_INCREMENT, so deleting the highest row frees its ID the same way
// the list backends do.
func (r *repo[T]) add(item T) (T, error) {
	var zero T
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		var probe T
		if err := tx.Model(&probe).Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error; err != nil {
			return err
		}
		item = r.setID(item, next)
		return tx.Create(&item).Error
	})
	if err != nil {
		return zero, fmt.Errorf("add %s: %w", r.name, apperrors.WrapGormError(err))
	}
	return item, nil
}

func (r *repo[T]) update(item T, id int) (T, error) {
	var zero T
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, r.notFound(id)
		}
		return zero, fmt.Errorf("update %s: %w", r.name, apperrors.WrapGormError(err))
	}
	return item, nil
}

func (r *repo[T]) delete(id int) error {
	var probe T
	result := r.db.Delete(&probe, id)
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.name, apperrors.WrapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *repo[T]) getSingle(id int) (T, error) {
	var item T
	err := r.db.First(&item, id).Error
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, r.notFound(id)
		}
		return zero, fmt.Errorf("get %s: %w", r.name, apperrors.WrapGormError(err))
	}
	return item, nil
}

func (r *repo[T]) getMany() ([]T, error) {
	var items []T
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %ss: %w", r.name, apperrors.WrapGormError(err))
	}
	return items, nil
}

func (r *repo[T]) notFound(id int) error {
	return fmt.Errorf("%s with id %d: %w", r.name, id, apperrors.ErrNotFound)
}

// AutoMigrate creates or updates the three entity tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{})
}

// NewRepositories builds the three GORM-backed repositories on the given
// connection.
func NewRepositories(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}
