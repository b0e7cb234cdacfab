package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"blogapp/pkg/core/repository"
	"blogapp/pkg/web/model"
)

type AuthHandler struct {
	users repository.UserRepository
}

func NewAuthHandler(users repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /auth/login: a stateless scan for an exact match on
// username and password. No token, no session; the client keeps the
// returned identity.
func (h *AuthHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	users, err := h.users.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	for _, u := range users {
		if u.Username == req.Username && u.Password == req.Password {
			c.JSON(200, model.NewUserRes(u))
			return
		}
	}
	respondError(c, 401, "invalid username or password")
}
