package file

import "blogapp/pkg/core/model"

type CommentRepository struct {
	s *store[model.Comment]
}

func NewCommentRepository(path string) (*CommentRepository, error) {
	s, err := newStore("comment", path,
		func(c model.Comment) int { return c.ID },
		func(c model.Comment, id int) model.Comment { c.ID = id; return c },
	)
	if err != nil {
		return nil, err
	}
	return &CommentRepository{s: s}, nil
}

func (r *CommentRepository) Add(comment model.Comment) (model.Comment, error) {
	return r.s.add(comment)
}

func (r *CommentRepository) Update(comment model.Comment) (model.Comment, error) {
	return r.s.update(comment)
}

func (r *CommentRepository) Delete(id int) error {
	return r.s.delete(id)
}

func (r *CommentRepository) GetSingle(id int) (model.Comment, error) {
	return r.s.getSingle(id)
}

func (r *CommentRepository) GetMany() ([]model.Comment, error) {
	return r.s.getMany()
}
