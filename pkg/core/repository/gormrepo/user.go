package gormrepo

import (
	"gorm.io/gorm"

	"blogapp/pkg/core/model"
)

type UserRepository struct {
	r repo[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		r: repo[model.User]{
			db:    db,
			name:  "user",
			setID: func(u model.User, id int) model.User { u.ID = id; return u },
		},
	}
}

func (ur *UserRepository) Add(user model.User) (model.User, error) {
	return ur.r.add(user)
}

func (ur *UserRepository) Update(user model.User) (model.User, error) {
	return ur.r.update(user, user.ID)
}

func (ur *UserRepository) Delete(id int) error {
	return ur.r.delete(id)
}

func (ur *UserRepository) GetSingle(id int) (model.User, error) {
	return ur.r.getSingle(id)
}

func (ur *UserRepository) GetMany() ([]model.User, error) {
	return ur.r.getMany()
}
