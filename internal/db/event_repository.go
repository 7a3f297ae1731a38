package db

import (
	"context"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

func (repo *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := repo.database.WithContext(ctx).Order("date, id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventRepository) FindByID(ctx context.Context, eventID uint) (models.Event, error) {
	var event models.Event
	if err := repo.database.WithContext(ctx).First(&event, eventID).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (repo *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return repo.database.WithContext(ctx).Create(event).Error
}

func (repo *EventRepository) Save(ctx context.Context, event *models.Event) error {
	return repo.database.WithContext(ctx).Save(event).Error
}

func (repo *EventRepository) Delete(ctx context.Context, eventID uint) (bool, error) {
	result := repo.database.WithContext(ctx).Delete(&models.Event{}, eventID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
