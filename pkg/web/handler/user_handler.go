package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cloudwego/hertz/pkg/app"

	coremodel "blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/web/model"
)

type UserHandler struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func NewUserHandler(users repository.UserRepository, posts repository.PostRepository) *UserHandler {
	return &UserHandler{users: users, posts: posts}
}

// Create handles POST /users. Username uniqueness is case-insensitive and
// checked against the full collection before the write.
func (h *UserHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	if len(strings.TrimSpace(req.Username)) < 3 {
		respondError(c, 400, "username must be at least 3 characters")
		return
	}
	if err := validatePasswordStrength(req.Password); err != nil {
		respondError(c, 400, err.Error())
		return
	}

	taken, err := h.usernameTaken(req.Username, 0)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if taken {
		respondError(c, 409, "username already exists")
		return
	}

	created, err := h.users.Add(coremodel.User{Username: req.Username, Password: req.Password})
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/users/%d", created.ID))
	c.JSON(201, model.NewUserRes(created))
}

// List handles GET /users?usernameContains=.
func (h *UserHandler) List(ctx context.Context, c *app.RequestContext) {
	users, err := h.users.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	contains := c.Query("usernameContains")
	res := make([]model.UserRes, 0, len(users))
	for _, u := range users {
		if contains != "" && !containsFold(u.Username, contains) {
			continue
		}
		res = append(res, model.NewUserRes(u))
	}
	c.JSON(200, res)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}

	user, err := h.users.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(200, model.NewUserRes(user))
}

// Update handles PATCH /users/:id. Only supplied fields overwrite; a rename
// goes through the same uniqueness scan as create.
func (h *UserHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}

	var req model.UpdateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	existing, err := h.users.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.Username != nil {
		if len(strings.TrimSpace(*req.Username)) < 3 {
			respondError(c, 400, "username must be at least 3 characters")
			return
		}
		taken, err := h.usernameTaken(*req.Username, id)
		if err != nil {
			respondRepoError(c, err)
			return
		}
		if taken {
			respondError(c, 409, "username already exists")
			return
		}
		existing.Username = *req.Username
	}
	if req.Password != nil {
		existing.Password = *req.Password
	}

	if _, err := h.users.Update(existing); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// ListPosts handles GET /users/:id/posts.
func (h *UserHandler) ListPosts(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}

	if _, err := h.users.GetSingle(id); err != nil {
		respondRepoError(c, err)
		return
	}

	posts, err := h.posts.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	res := make([]model.PostRes, 0)
	for _, p := range posts {
		if p.UserID == id {
			res = append(res, model.NewPostRes(p))
		}
	}
	c.JSON(200, res)
}

// GetPost handles GET /users/:id/posts/:postId. The post must belong to the
// user, otherwise it is not found under this path.
func (h *UserHandler) GetPost(ctx context.Context, c *app.RequestContext) {
	userID, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}
	postID, ok := pathInt(c, "postId")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	if _, err := h.users.GetSingle(userID); err != nil {
		respondRepoError(c, err)
		return
	}

	post, err := h.posts.GetSingle(postID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if post.UserID != userID {
		respondError(c, 404, fmt.Sprintf("post with id %d does not belong to user %d", postID, userID))
		return
	}
	c.JSON(200, model.NewPostRes(post))
}

func (h *UserHandler) usernameTaken(username string, excludeID int) (bool, error) {
	users, err := h.users.GetMany()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.ID != excludeID && strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

// validatePasswordStrength enforces 8-20 characters mixing upper, lower,
// digit and special.
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return errors.New("password must be 8 to 20 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSymbol(r) || unicode.IsPunct(r):
			hasSpecial = true
		}
	}

	if !(hasUpper && hasLower && hasDigit && hasSpecial) {
		return errors.New("password must contain upper and lower case letters, a digit and a special character")
	}
	return nil
}
