package db

import (
	"context"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type ContactRepository struct {
	database *gorm.DB
}

func NewContactRepository(database *gorm.DB) *ContactRepository {
	return &ContactRepository{database: database}
}

func (repo *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := make([]models.ContactMessage, 0)
	if err := repo.database.WithContext(ctx).Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return repo.database.WithContext(ctx).Create(message).Error
}

func (repo *ContactRepository) Delete(ctx context.Context, messageID uint) (bool, error) {
	result := repo.database.WithContext(ctx).Delete(&models.ContactMessage{}, messageID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
