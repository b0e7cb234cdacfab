package gormrepo

import (
	"gorm.io/gorm"

	"blogapp/pkg/core/model"
)

type PostRepository struct {
	r repo[model.Post]
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{
		r: repo[model.Post]{
			db:    db,
			name:  "post",
			setID: func(p model.Post, id int) model.Post { p.ID = id; return p },
		},
	}
}

func (pr *PostRepository) Add(post model.Post) (model.Post, error) {
	return pr.r.add(post)
}

func (pr *PostRepository) Update(post model.Post) (model.Post, error) {
	return pr.r.update(post, post.ID)
}

func (pr *PostRepository) Delete(id int) error {
	return pr.r.delete(id)
}

func (pr *PostRepository) GetSingle(id int) (model.Post, error) {
	return pr.r.getSingle(id)
}

func (pr *PostRepository) GetMany() ([]model.Post, error) {
	return pr.r.getMany()
}
