package file

import "blogapp/pkg/core/model"

type PostRepository struct {
	s *store[model.Post]
}

func NewPostRepository(path string) (*PostRepository, error) {
	s, err := newStore("post", path,
		func(p model.Post) int { return p.ID },
		func(p model.Post, id int) model.Post { p.ID = id; return p },
	)
	if err != nil {
		return nil, err
	}
	return &PostRepository{s: s}, nil
}

func (r *PostRepository) Add(post model.Post) (model.Post, error) {
	return r.s.add(post)
}

func (r *PostRepository) Update(post model.Post) (model.Post, error) {
	return r.s.update(post)
}

func (r *PostRepository) Delete(id int) error {
	return r.s.delete(id)
}

func (r *PostRepository) GetSingle(id int) (model.Post, error) {
	return r.s.getSingle(id)
}

func (r *PostRepository) GetMany() ([]model.Post, error) {
	return r.s.getMany()
}
