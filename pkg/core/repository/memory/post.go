package memory

import "blogapp/pkg/core/model"

type PostRepository struct {
	c *collection[model.Post]
}

func NewPostRepository(seed []model.Post) *PostRepository {
	return &PostRepository{
		c: newCollection("post", seed,
			func(p model.Post) int { return p.ID },
			func(p model.Post, id int) model.Post { p.ID = id; return p },
		),
	}
}

func (r *PostRepository) Add(post model.Post) (model.Post, error) {
	return r.c.add(post)
}

func (r *PostRepository) Update(post model.Post) (model.Post, error) {
	return r.c.update(post)
}

func (r *PostRepository) Delete(id int) error {
	return r.c.delete(id)
}

func (r *PostRepository) GetSingle(id int) (model.Post, error) {
	return r.c.getSingle(id)
}

func (r *PostRepository) GetMany() ([]model.Post, error) {
	return r.c.getMany()
}
