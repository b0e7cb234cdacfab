package model

// Seed is a fixed starter dataset injected into a backend at construction
// time. It is configuration, not a hard-coded constant inside the backend,
// so tests and demos can supply their own.
type Seed struct {
	Users    []User    `json:"users"`
	Posts    []Post    `json:"posts"`
	Comments []Comment `json:"comments"`
}

// DefaultSeed returns the demo dataset: three rows per entity.
func DefaultSeed() Seed {
	return Seed{
		Users: []User{
			{ID: 1, Username: "Youssef", Password: "123"},
			{ID: 2, Username: "Ahmed", Password: "456"},
			{ID: 3, Username: "Ali", Password: "789"},
		},
		Posts: []Post{
			{ID: 1, Title: "Post 1", Body: "Content 1", UserID: 2},
			{ID: 2, Title: "Post 2", Body: "Content 2", UserID: 1},
			{ID: 3, Title: "Post 3", Body: "Content 3", UserID: 3},
		},
		Comments: []Comment{
			{ID: 1, Body: "Comment 1", PostID: 1, UserID: 2},
			{ID: 2, Body: "Comment 2", PostID: 2, UserID: 1},
			{ID: 3, Body: "Comment 3", PostID: 3, UserID: 3},
		},
	}
}
