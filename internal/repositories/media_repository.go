package repositories

import (
	"context"

	"github.com/anonto42/social-crud/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) error
	GetMediaByID(ctx context.Context, id uint) (*models.Media, error)
	GetAllMedia(ctx context.Context) ([]models.Media, error)
	UpdateMedia(ctx context.Context, media *models.Media) error
	DeleteMedia(ctx context.Context, id uint) error
}

// GormMediaRepository implements MediaRepository on top of GORM
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GormMediaRepository
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

func (r *GormMediaRepository) CreateMedia(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *GormMediaRepository) GetMediaByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *GormMediaRepository) GetAllMedia(ctx context.Context) ([]models.Media, error) {
	items := []models.Media{}
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormMediaRepository) UpdateMedia(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

func (r *GormMediaRepository) DeleteMedia(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Media{}, id).Error
}
