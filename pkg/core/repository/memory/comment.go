package memory

import "blogapp/pkg/core/model"

type CommentRepository struct {
	c *collection[model.Comment]
}

func NewCommentRepository(seed []model.Comment) *CommentRepository {
	return &CommentRepository{
		c: newCollection("comment", seed,
			func(cm model.Comment) int { return cm.ID },
			func(cm model.Comment, id int) model.Comment { cm.ID = id; return cm },
		),
	}
}

func (r *CommentRepository) Add(comment model.Comment) (model.Comment, error) {
	return r.c.add(comment)
}

func (r *CommentRepository) Update(comment model.Comment) (model.Comment, error) {
	return r.c.update(comment)
}

func (r *CommentRepository) Delete(id int) error {
	return r.c.delete(id)
}

func (r *CommentRepository) GetSingle(id int) (model.Comment, error) {
	return r.c.getSingle(id)
}

func (r *CommentRepository) GetMany() ([]model.Comment, error) {
	return r.c.getMany()
}
