package models

// Comment represents a comment written by a user on a post
type Comment struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CommentText string `json:"comment_text" gorm:"size:500;not null"`
	AuthorID    uint   `json:"author_id" gorm:"not null;index"`
	PostID      uint   `json:"post_id" gorm:"not null;index"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
	AuthorID    uint   `json:"author_id" validate:"required"`
	PostID      uint   `json:"post_id" validate:"required"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	CommentText *string `json:"comment_text"`
	AuthorID    *uint   `json:"author_id"`
	PostID      *uint   `json:"post_id"`
}

func (r *UpdateCommentRequest) Apply(comment *Comment) {
	if r.CommentText != nil {
		comment.CommentText = *r.CommentText
	}
	if r.AuthorID != nil {
		comment.AuthorID = *r.AuthorID
	}
	if r.PostID != nil {
		comment.PostID = *r.PostID
	}
}
