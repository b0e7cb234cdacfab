package router_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapp/pkg/common/config"
	"blogapp/pkg/core/model"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/core/repository/file"
	"blogapp/pkg/core/repository/memory"
	"blogapp/pkg/web/router"
)

func newTestServer(t *testing.T, repos repository.Repositories) *server.Hertz {
	t.Helper()
	cfg := config.Default()
	cfg.Middleware.RateLimit.Rate = 1000

	h := server.New()
	router.RegisterAPIs(h, cfg, repos)
	return h
}

func doJSON(h *server.Hertz, method, url, body string) *protocol.Response {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	w := ut.PerformRequest(h.Engine, method, url, b,
		ut.Header{Key: "Content-Type", Value: "application/json"})
	return w.Result()
}

func parseObject(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func parseArray(t *testing.T, data []byte) []map[string]interface{} {
	t.Helper()
	var a []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &a))
	return a
}

func TestHealthRoute(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "GET", "/health", "")
	assert.Equal(t, 200, resp.StatusCode())
}

func TestCreateUserStripsPasswordAndRejectsDuplicate(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.Seed{}))

	resp := doJSON(h, "POST", "/users", `{"username":"Ana","password":"Abc12345!"}`)
	require.Equal(t, 201, resp.StatusCode())

	body := parseObject(t, resp.Body())
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Ana", body["username"])
	_, leaked := body["password"]
	assert.False(t, leaked, "password must not appear in responses")

	// Uniqueness is case-insensitive.
	resp = doJSON(h, "POST", "/users", `{"username":"ana","password":"Abc12345!"}`)
	assert.Equal(t, 409, resp.StatusCode())

	users := parseArray(t, doJSON(h, "GET", "/users", "").Body())
	assert.Len(t, users, 1)
}

func TestCreateUserValidation(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.Seed{}))

	resp := doJSON(h, "POST", "/users", `{"username":"Al","password":"Abc12345!"}`)
	assert.Equal(t, 400, resp.StatusCode())

	resp = doJSON(h, "POST", "/users", `{"username":"Alice","password":"weak"}`)
	assert.Equal(t, 400, resp.StatusCode())
}

func TestLogin(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "POST", "/auth/login", `{"username":"Youssef","password":"123"}`)
	require.Equal(t, 200, resp.StatusCode())

	body := parseObject(t, resp.Body())
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Youssef", body["username"])
	_, leaked := body["password"]
	assert.False(t, leaked)

	resp = doJSON(h, "POST", "/auth/login", `{"username":"Youssef","password":"wrong"}`)
	assert.Equal(t, 401, resp.StatusCode())
}

func TestListUsersFilter(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	users := parseArray(t, doJSON(h, "GET", "/users?usernameContains=ssef", "").Body())
	require.Len(t, users, 1)
	assert.Equal(t, "Youssef", users[0]["username"])
}

func TestPostFiltersComposeWithAnd(t *testing.T) {
	seed := model.Seed{
		Users: []model.User{{ID: 1, Username: "Ana", Password: "x"}},
		Posts: []model.Post{
			{ID: 1, Title: "Foobar", Body: "hello", UserID: 1},
			{ID: 2, Title: "other", Body: "hello", UserID: 1},
			{ID: 3, Title: "FOO too", Body: "bye", UserID: 1},
		},
	}
	h := newTestServer(t, memory.NewRepositories(seed))

	posts := parseArray(t, doJSON(h, "GET", "/posts?titleContains=foo", "").Body())
	require.Len(t, posts, 2)

	posts = parseArray(t, doJSON(h, "GET", "/posts?titleContains=foo&body=hello", "").Body())
	require.Len(t, posts, 1)
	assert.Equal(t, "Foobar", posts[0]["title"])

	posts = parseArray(t, doJSON(h, "GET", "/posts?userId=9", "").Body())
	assert.Empty(t, posts)
}

func TestCreatePostForMissingUserLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	repos, err := file.NewRepositories(dir)
	require.NoError(t, err)
	h := newTestServer(t, repos)

	resp := doJSON(h, "POST", "/users/1/posts", `{"title":"T","body":"B"}`)
	assert.Equal(t, 404, resp.StatusCode())

	data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCreatePostForUser(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "POST", "/users/1/posts", `{"title":"T","body":"B"}`)
	require.Equal(t, 201, resp.StatusCode())

	body := parseObject(t, resp.Body())
	assert.Equal(t, float64(4), body["id"])
	assert.Equal(t, float64(1), body["userId"])
}

func TestPatchPostIsPartial(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "PATCH", "/posts/1", `{"body":"rewritten"}`)
	require.Equal(t, 204, resp.StatusCode())

	body := parseObject(t, doJSON(h, "GET", "/posts/1", "").Body())
	assert.Equal(t, "Post 1", body["title"], "omitted field must not change")
	assert.Equal(t, "rewritten", body["body"])
}

func TestUserPostsScoping(t *testing.T) {
	// Seed: post 1 belongs to user 2.
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	posts := parseArray(t, doJSON(h, "GET", "/users/2/posts", "").Body())
	require.Len(t, posts, 1)
	assert.Equal(t, float64(1), posts[0]["id"])

	resp := doJSON(h, "GET", "/users/9/posts", "")
	assert.Equal(t, 404, resp.StatusCode())

	resp = doJSON(h, "GET", "/users/2/posts/1", "")
	assert.Equal(t, 200, resp.StatusCode())

	resp = doJSON(h, "GET", "/users/1/posts/1", "")
	assert.Equal(t, 404, resp.StatusCode())
}

func TestCreateCommentChecksReferences(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "POST", "/comments", `{"body":"x","userId":1,"postId":99}`)
	assert.Equal(t, 400, resp.StatusCode())

	resp = doJSON(h, "POST", "/comments", `{"body":"x","userId":99,"postId":1}`)
	assert.Equal(t, 400, resp.StatusCode())

	resp = doJSON(h, "POST", "/comments", `{"body":"x","userId":1,"postId":1}`)
	require.Equal(t, 201, resp.StatusCode())
	body := parseObject(t, resp.Body())
	assert.Equal(t, float64(4), body["id"])
}

func TestCreateCommentUnderPost(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "POST", "/posts/99/comments", `{"body":"x","userId":1}`)
	assert.Equal(t, 404, resp.StatusCode())

	resp = doJSON(h, "POST", "/posts/2/comments", `{"body":"x","userId":1}`)
	require.Equal(t, 201, resp.StatusCode())
	body := parseObject(t, resp.Body())
	assert.Equal(t, float64(2), body["postId"])
}

func TestDeleteMissingCommentIsNotFound(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "DELETE", "/comments/99", "")
	assert.Equal(t, 404, resp.StatusCode())

	comments := parseArray(t, doJSON(h, "GET", "/comments", "").Body())
	assert.Len(t, comments, 3)
}

func TestScopedCommentOwnership(t *testing.T) {
	// Seed: comment 1 belongs to post 1.
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "PATCH", "/posts/2/comments/1", `{"body":"x"}`)
	assert.Equal(t, 400, resp.StatusCode())

	resp = doJSON(h, "PATCH", "/posts/1/comments/1", `{"body":"edited"}`)
	assert.Equal(t, 204, resp.StatusCode())

	body := parseObject(t, doJSON(h, "GET", "/comments/1", "").Body())
	assert.Equal(t, "edited", body["body"])

	resp = doJSON(h, "DELETE", "/posts/1/comments/1", "")
	assert.Equal(t, 204, resp.StatusCode())

	resp = doJSON(h, "GET", "/comments/1", "")
	assert.Equal(t, 404, resp.StatusCode())
}

func TestCommentListFilters(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	comments := parseArray(t, doJSON(h, "GET", "/comments?postId=1", "").Body())
	require.Len(t, comments, 1)
	assert.Equal(t, float64(1), comments[0]["id"])

	comments = parseArray(t, doJSON(h, "GET", "/comments?postId=1&userId=9", "").Body())
	assert.Empty(t, comments)
}

func TestPatchUserRenameConflict(t *testing.T) {
	h := newTestServer(t, memory.NewRepositories(model.DefaultSeed()))

	resp := doJSON(h, "PATCH", "/users/1", `{"username":"ahmed"}`)
	assert.Equal(t, 409, resp.StatusCode())

	resp = doJSON(h, "PATCH", "/users/1", `{"username":"Joseph"}`)
	assert.Equal(t, 204, resp.StatusCode())

	body := parseObject(t, doJSON(h, "GET", "/users/1", "").Body())
	assert.Equal(t, "Joseph", body["username"])
}
