package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	coremodel "blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/web/model"
)

type PostHandler struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

func NewPostHandler(posts repository.PostRepository, users repository.UserRepository, comments repository.CommentRepository) *PostHandler {
	return &PostHandler{posts: posts, users: users, comments: comments}
}

// Create handles POST /users/:id/posts. The referenced user must exist;
// storage is not touched otherwise.
func (h *PostHandler) Create(ctx context.Context, c *app.RequestContext) {
	userID, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid user id")
		return
	}

	if _, err := h.users.GetSingle(userID); err != nil {
		respondRepoError(c, err)
		return
	}

	var req model.CreatePostReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, 400, "title is required")
		return
	}

	created, err := h.posts.Add(coremodel.Post{Title: req.Title, Body: req.Body, UserID: userID})
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/posts/%d", created.ID))
	c.JSON(201, model.NewPostRes(created))
}

// List handles GET /posts?titleContains=&body=&userId=. Filters compose
// with AND; the substring matches are case-insensitive.
func (h *PostHandler) List(ctx context.Context, c *app.RequestContext) {
	userID, ok := queryInt(c, "userId")
	if !ok {
		respondError(c, 400, "invalid userId filter")
		return
	}

	posts, err := h.posts.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	titleContains := c.Query("titleContains")
	body := c.Query("body")

	res := make([]model.PostRes, 0, len(posts))
	for _, p := range posts {
		if titleContains != "" && !containsFold(p.Title, titleContains) {
			continue
		}
		if body != "" && !containsFold(p.Body, body) {
			continue
		}
		if userID != nil && p.UserID != *userID {
			continue
		}
		res = append(res, model.NewPostRes(p))
	}
	c.JSON(200, res)
}

// GetByID handles GET /posts/:id.
func (h *PostHandler) GetByID(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	post, err := h.posts.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(200, model.NewPostRes(post))
}

// Update handles PATCH /posts/:id with partial semantics.
func (h *PostHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	var req model.UpdatePostReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	existing, err := h.posts.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Body != nil {
		existing.Body = *req.Body
	}

	if _, err := h.posts.Update(existing); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	if err := h.posts.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// ListComments handles GET /posts/:id/comments.
func (h *PostHandler) ListComments(ctx context.Context, c *app.RequestContext) {
	postID, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	if _, err := h.posts.GetSingle(postID); err != nil {
		respondRepoError(c, err)
		return
	}

	comments, err := h.comments.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	res := make([]model.CommentRes, 0)
	for _, cm := range comments {
		if cm.PostID == postID {
			res = append(res, model.NewCommentRes(cm))
		}
	}
	c.JSON(200, res)
}
