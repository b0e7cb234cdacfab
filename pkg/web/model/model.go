package model

import coremodel "blogapp/pkg/core/model"

// Request bodies. Update requests use pointers so an omitted field can be
// told apart from an explicit empty value; only supplied fields overwrite.
type (
	CreateUserReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	UpdateUserReq struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}

	LoginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	CreatePostReq struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}

	UpdatePostReq struct {
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}

	CreateCommentReq struct {
		Body   string `json:"body"`
		UserID int    `json:"userId"`
		PostID int    `json:"postId"`
	}

	UpdateCommentReq struct {
		Body *string `json:"body"`
	}
)

// Response bodies. UserRes deliberately has no password field.
type (
	UserRes struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	}

	PostRes struct {
		ID     int    `json:"id"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		UserID int    `json:"userId"`
	}

	CommentRes struct {
		ID     int    `json:"id"`
		Body   string `json:"body"`
		UserID int    `json:"userId"`
		PostID int    `json:"postId"`
	}
)

func NewUserRes(u coremodel.User) UserRes {
	return UserRes{ID: u.ID, Username: u.Username}
}

func NewPostRes(p coremodel.Post) PostRes {
	return PostRes{ID: p.ID, Title: p.Title, Body: p.Body, UserID: p.UserID}
}

func NewCommentRes(c coremodel.Comment) CommentRes {
	return CommentRes{ID: c.ID, Body: c.Body, UserID: c.UserID, PostID: c.PostID}
}
