package models

// Follower is a directed edge: UserFromID follows UserToID.
// The pair is the primary key, so an edge exists at most once.
type Follower struct {
	UserFromID uint `json:"user_from_id" gorm:"primaryKey;autoIncrement:false"`
	UserToID   uint `json:"user_to_id" gorm:"primaryKey;autoIncrement:false"`
}

func (Follower) TableName() string {
	return "followers"
}

// FollowerRequest identifies an edge, used both to create and to delete one
type FollowerRequest struct {
	UserFromID uint `json:"user_from_id" validate:"required"`
	UserToID   uint `json:"user_to_id" validate:"required"`
}
