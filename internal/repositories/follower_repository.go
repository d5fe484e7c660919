package repositories

import (
	"context"

	"github.com/anonto42/social-crud/backend/internal/models"
	"gorm.io/gorm"
)

// FollowerRepository defines the interface for follower edge operations.
// Edges have no surrogate key and are addressed by their (from, to) pair.
type FollowerRepository interface {
	CreateFollower(ctx context.Context, follower *models.Follower) error
	GetFollower(ctx context.Context, fromID, toID uint) (*models.Follower, error)
	GetFollowers(ctx context.Context) ([]models.Follower, error)
	DeleteFollower(ctx context.Context, follower *models.Follower) error
}

// GormFollowerRepository implements FollowerRepository on top of GORM
type GormFollowerRepository struct {
	db *gorm.DB
}

// NewGormFollowerRepository creates a new GormFollowerRepository
func NewGormFollowerRepository(db *gorm.DB) *GormFollowerRepository {
	return &GormFollowerRepository{db: db}
}

func (r *GormFollowerRepository) CreateFollower(ctx context.Context, follower *models.Follower) error {
	return r.db.WithContext(ctx).Create(follower).Error
}

// GetFollower returns the edge for the pair, or gorm.ErrRecordNotFound
func (r *GormFollowerRepository) GetFollower(ctx context.Context, fromID, toID uint) (*models.Follower, error) {
	var follower models.Follower
	err := r.db.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", fromID, toID).
		First(&follower).Error
	if err != nil {
		return nil, err
	}
	return &follower, nil
}

func (r *GormFollowerRepository) GetFollowers(ctx context.Context) ([]models.Follower, error) {
	followers := []models.Follower{}
	if err := r.db.WithContext(ctx).Order("user_from_id, user_to_id").Find(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

func (r *GormFollowerRepository) DeleteFollower(ctx context.Context, follower *models.Follower) error {
	return r.db.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", follower.UserFromID, follower.UserToID).
		Delete(&models.Follower{}).Error
}
