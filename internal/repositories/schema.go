package repositories

import (
	"log"

	"github.com/anonto42/social-crud/backend/internal/models"
	"gorm.io/gorm"
)

// The table types below exist only for migration. They embed the flat models
// and add belongs-to fields so AutoMigrate emits the foreign keys. Nothing
// reads or writes through them at runtime.

type postTable struct {
	models.Post
	Owner models.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

type commentTable struct {
	models.Comment
	Author     models.User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ParentPost models.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

type mediaTable struct {
	models.Media
	ParentPost models.Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// Edges go away with either endpoint.
type followerTable struct {
	models.Follower
	From models.User `gorm:"foreignKey:UserFromID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	To   models.User `gorm:"foreignKey:UserToID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// AutoMigrate creates or updates the tables for all five resources
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&postTable{},
		&commentTable{},
		&mediaTable{},
		&followerTable{},
	)
	if err != nil {
		return err
	}
	log.Println("Auto-migrations completed for all models.")
	return nil
}
