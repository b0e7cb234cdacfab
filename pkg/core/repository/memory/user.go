package memory

import "blogapp/pkg/core/model"

type UserRepository struct {
	c *collection[model.User]
}

func NewUserRepository(seed []model.User) *UserRepository {
	return &UserRepository{
		c: newCollection("user", seed,
			func(u model.User) int { return u.ID },
			func(u model.User, id int) model.User { u.ID = id; return u },
		),
	}
}

func (r *UserRepository) Add(user model.User) (model.User, error) {
	return r.c.add(user)
}

func (r *UserRepository) Update(user model.User) (model.User, error) {
	return r.c.update(user)
}

func (r *UserRepository) Delete(id int) error {
	return r.c.delete(id)
}

func (r *UserRepository) GetSingle(id int) (model.User, error) {
	return r.c.getSingle(id)
}

func (r *UserRepository) GetMany() ([]model.User, error) {
	return r.c.getMany()
}
