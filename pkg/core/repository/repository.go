// Package repository defines the CRUD contract every storage backend must
// satisfy. All backends expose identical observable semantics; only
// durability differs.
//
// Policy, applied uniformly:
//   - Add assigns ID = max(existing)+1, or 1 when the collection is empty,
//     and returns the stored record including the assigned ID.
//   - Update, Delete and GetSingle report an absent target with an error
//     wrapping errors.ErrNotFound. Never a silent no-op.
//   - GetMany returns a snapshot of the whole collection; filtering is the
//     caller's job.
package repository

import "blogapp/pkg/core/model"

type UserRepository interface {
	Add(user model.User) (model.User, error)
	Update(user model.User) (model.User, error)
	Delete(id int) error
	GetSingle(id int) (model.User, error)
	GetMany() ([]model.User, error)
}

type PostRepository interface {
	Add(post model.Post) (model.Post, error)
	Update(post model.Post) (model.Post, error)
	Delete(id int) error
	GetSingle(id int) (model.Post, error)
	GetMany() ([]model.Post, error)
}

type CommentRepository interface {
	Add(comment model.Comment) (model.Comment, error)
	Update(comment model.Comment) (model.Comment, error)
	Delete(id int) error
	GetSingle(id int) (model.Comment, error)
	GetMany() ([]model.Comment, error)
}

// Repositories bundles one repository per entity, all served by the same
// backend. Handlers depend on this, not on a concrete backend.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
}
