package models

// MediaType is the kind of file attached to a post
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is an image or video attached to a post
type Media struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	Type   MediaType `json:"type" gorm:"size:10;not null;check:chk_media_type,type IN ('image','video')"`
	URL    string    `json:"url" gorm:"size:255;not null"`
	PostID uint      `json:"post_id" gorm:"not null;index"`
}

func (Media) TableName() string {
	return "media"
}

// CreateMediaRequest defines the request body for attaching media to a post
type CreateMediaRequest struct {
	Type   MediaType `json:"type" validate:"required,oneof=image video"`
	URL    string    `json:"url" validate:"required"`
	PostID uint      `json:"post_id" validate:"required"`
}

// UpdateMediaRequest defines the request body for updating a media item
type UpdateMediaRequest struct {
	Type   *MediaType `json:"type" validate:"omitempty,oneof=image video"`
	URL    *string    `json:"url"`
	PostID *uint      `json:"post_id"`
}

func (r *UpdateMediaRequest) Apply(media *Media) {
	if r.Type != nil {
		media.Type = *r.Type
	}
	if r.URL != nil {
		media.URL = *r.URL
	}
	if r.PostID != nil {
		media.PostID = *r.PostID
	}
}
