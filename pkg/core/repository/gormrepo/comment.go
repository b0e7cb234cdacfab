package gormrepo

import (
	"gorm.io/gorm"

	"blogapp/pkg/core/model"
)

type CommentRepository struct {
	r repo[model.Comment]
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		r: repo[model.Comment]{
			db:    db,
			name:  "comment",
			setID: func(c model.Comment, id int) model.Comment { c.ID = id; return c },
		},
	}
}

func (cr *CommentRepository) Add(comment model.Comment) (model.Comment, error) {
	return cr.r.add(comment)
}

func (cr *CommentRepository) Update(comment model.Comment) (model.Comment, error) {
	return cr.r.update(comment, comment.ID)
}

func (cr *CommentRepository) Delete(id int) error {
	return cr.r.delete(id)
}

func (cr *CommentRepository) GetSingle(id int) (model.Comment, error) {
	return cr.r.getSingle(id)
}

func (cr *CommentRepository) GetMany() ([]model.Comment, error) {
	return cr.r.getMany()
}
