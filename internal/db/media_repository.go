package db

import (
	"context"
	"strings"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type MediaRepository struct {
	database *gorm.DB
}

func NewMediaRepository(database *gorm.DB) *MediaRepository {
	return &MediaRepository{database: database}
}

func (repo *MediaRepository) List(ctx context.Context, category string, kind string) ([]models.MediaItem, error) {
	items := make([]models.MediaItem, 0)
	tx := repo.database.WithContext(ctx).Order("created_at DESC, id DESC")
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		tx = tx.Where("category = ?", trimmed)
	}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		tx = tx.Where("kind = ?", trimmed)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *MediaRepository) FindByID(ctx context.Context, itemID uint) (models.MediaItem, error) {
	var item models.MediaItem
	if err := repo.database.WithContext(ctx).First(&item, itemID).Error; err != nil {
		return models.MediaItem{}, err
	}
	return item, nil
}

func (repo *MediaRepository) Create(ctx context.Context, item *models.MediaItem) error {
	return repo.database.WithContext(ctx).Create(item).Error
}

func (repo *MediaRepository) Save(ctx context.Context, item *models.MediaItem) error {
	return repo.database.WithContext(ctx).Save(item).Error
}

func (repo *MediaRepository) Delete(ctx context.Context, itemID uint) (bool, error) {
	result := repo.database.WithContext(ctx).Delete(&models.MediaItem{}, itemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
