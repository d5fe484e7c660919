package models

// Post is owned by a single user. Comments and media point back to it by PostID.
type Post struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`
}

func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	UserID *uint `json:"user_id"`
}

func (r *UpdatePostRequest) Apply(post *Post) {
	if r.UserID != nil {
		post.UserID = *r.UserID
	}
}
