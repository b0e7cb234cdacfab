package file

import "blogapp/pkg/core/model"

type UserRepository struct {
	s *store[model.User]
}

func NewUserRepository(path string) (*UserRepository, error) {
	s, err := newStore("user", path,
		func(u model.User) int { return u.ID },
		func(u model.User, id int) model.User { u.ID = id; return u },
	)
	if err != nil {
		return nil, err
	}
	return &UserRepository{s: s}, nil
}

func (r *UserRepository) Add(user model.User) (model.User, error) {
	return r.s.add(user)
}

func (r *UserRepository) Update(user model.User) (model.User, error) {
	return r.s.update(user)
}

func (r *UserRepository) Delete(id int) error {
	return r.s.delete(id)
}

func (r *UserRepository) GetSingle(id int) (model.User, error) {
	return r.s.getSingle(id)
}

func (r *UserRepository) GetMany() ([]model.User, error) {
	return r.s.getMany()
}
