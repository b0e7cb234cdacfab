package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	apperrors "blogapp/pkg/common/errors"
	coremodel "blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/web/model"
)

type CommentHandler struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

func NewCommentHandler(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) *CommentHandler {
	return &CommentHandler{comments: comments, posts: posts, users: users}
}

// Create handles POST /comments. Both referenced entities must exist before
// anything is written; a dangling reference is a bad request.
func (h *CommentHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.CreateCommentReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		respondError(c, 400, "body is required")
		return
	}

	if ok := h.verifyRef(c, h.postExists(req.PostID), fmt.Sprintf("post with id %d not found", req.PostID)); !ok {
		return
	}
	if ok := h.verifyRef(c, h.userExists(req.UserID), fmt.Sprintf("user with id %d not found", req.UserID)); !ok {
		return
	}

	created, err := h.comments.Add(coremodel.Comment{Body: req.Body, UserID: req.UserID, PostID: req.PostID})
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/comments/%d", created.ID))
	c.JSON(201, model.NewCommentRes(created))
}

// CreateForPost handles POST /posts/:id/comments. The post comes from the
// path, so its absence is 404; a dangling user reference stays 400.
func (h *CommentHandler) CreateForPost(ctx context.Context, c *app.RequestContext) {
	postID, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return
	}

	if _, err := h.posts.GetSingle(postID); err != nil {
		respondRepoError(c, err)
		return
	}

	var req model.CreateCommentReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		respondError(c, 400, "body is required")
		return
	}

	if ok := h.verifyRef(c, h.userExists(req.UserID), fmt.Sprintf("user with id %d not found", req.UserID)); !ok {
		return
	}

	created, err := h.comments.Add(coremodel.Comment{Body: req.Body, UserID: req.UserID, PostID: postID})
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/comments/%d", created.ID))
	c.JSON(201, model.NewCommentRes(created))
}

// List handles GET /comments?postId=&userId= with exact-equality filters.
func (h *CommentHandler) List(ctx context.Context, c *app.RequestContext) {
	postID, ok := queryInt(c, "postId")
	if !ok {
		respondError(c, 400, "invalid postId filter")
		return
	}
	userID, ok := queryInt(c, "userId")
	if !ok {
		respondError(c, 400, "invalid userId filter")
		return
	}

	comments, err := h.comments.GetMany()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	res := make([]model.CommentRes, 0, len(comments))
	for _, cm := range comments {
		if postID != nil && cm.PostID != *postID {
			continue
		}
		if userID != nil && cm.UserID != *userID {
			continue
		}
		res = append(res, model.NewCommentRes(cm))
	}
	c.JSON(200, res)
}

// GetByID handles GET /comments/:id.
func (h *CommentHandler) GetByID(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid comment id")
		return
	}

	comment, err := h.comments.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(200, model.NewCommentRes(comment))
}

// Update handles PATCH /comments/:id with partial semantics.
func (h *CommentHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid comment id")
		return
	}

	var req model.UpdateCommentReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	existing, err := h.comments.GetSingle(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.Body != nil {
		existing.Body = *req.Body
	}

	if _, err := h.comments.Update(existing); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// Delete handles DELETE /comments/:id.
func (h *CommentHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid comment id")
		return
	}

	if err := h.comments.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// UpdateForPost handles PATCH /posts/:id/comments/:commentId. The comment
// must belong to the addressed post.
func (h *CommentHandler) UpdateForPost(ctx context.Context, c *app.RequestContext) {
	existing, ok := h.scopedComment(c)
	if !ok {
		return
	}

	var req model.UpdateCommentReq
	if err := c.BindAndValidate(&req); err != nil {
		respondError(c, 400, "invalid request body")
		return
	}

	if req.Body != nil {
		existing.Body = *req.Body
	}

	if _, err := h.comments.Update(existing); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// DeleteForPost handles DELETE /posts/:id/comments/:commentId.
func (h *CommentHandler) DeleteForPost(ctx context.Context, c *app.RequestContext) {
	existing, ok := h.scopedComment(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(existing.ID); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(204)
}

// scopedComment resolves the post/comment pair of a nested comment route and
// verifies ownership. On failure it has already written the response.
func (h *CommentHandler) scopedComment(c *app.RequestContext) (coremodel.Comment, bool) {
	postID, ok := pathInt(c, "id")
	if !ok {
		respondError(c, 400, "invalid post id")
		return coremodel.Comment{}, false
	}
	commentID, ok := pathInt(c, "commentId")
	if !ok {
		respondError(c, 400, "invalid comment id")
		return coremodel.Comment{}, false
	}

	if _, err := h.posts.GetSingle(postID); err != nil {
		respondRepoError(c, err)
		return coremodel.Comment{}, false
	}

	comment, err := h.comments.GetSingle(commentID)
	if err != nil {
		respondRepoError(c, err)
		return coremodel.Comment{}, false
	}
	if comment.PostID != postID {
		respondError(c, 400, fmt.Sprintf("comment with id %d does not belong to post %d", commentID, postID))
		return coremodel.Comment{}, false
	}
	return comment, true
}

// verifyRef turns a failed foreign-key lookup into a 400 response.
func (h *CommentHandler) verifyRef(c *app.RequestContext, err error, msg string) bool {
	if err == nil {
		return true
	}
	if apperrors.IsNotFound(err) {
		respondError(c, 400, msg)
		return false
	}
	respondRepoError(c, err)
	return false
}

func (h *CommentHandler) postExists(id int) error {
	_, err := h.posts.GetSingle(id)
	return err
}

func (h *CommentHandler) userExists(id int) error {
	_, err := h.users.GetSingle(id)
	return err
}
