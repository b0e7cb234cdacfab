package model

// User is a registered account. The password is stored as plain text;
// the web layer is responsible for never echoing it back.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:varchar(100);not null"`
	Password string `json:"password" gorm:"type:varchar(100);not null"`
}

// Post belongs to the user identified by UserID. Storage backends do not
// enforce the reference; the web layer checks it on create.
type Post struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"type:varchar(255);not null"`
	Body   string `json:"body" gorm:"type:text;not null"`
	UserID int    `json:"userId" gorm:"index;not null"`
}

// Comment belongs to a post and a user. Same rule as Post: references are
// checked at the web layer, not by storage.
type Comment struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Body   string `json:"body" gorm:"type:text;not null"`
	UserID int    `json:"userId" gorm:"index;not null"`
	PostID int    `json:"postId" gorm:"index;not null"`
}
