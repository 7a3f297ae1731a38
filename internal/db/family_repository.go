package db

import (
	"context"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

type FamilyRepository struct {
	database *gorm.DB
}

func NewFamilyRepository(database *gorm.DB) *FamilyRepository {
	return &FamilyRepository{database: database}
}

func (repo *FamilyRepository) List(ctx context.Context) ([]models.Family, error) {
	families := make([]models.Family, 0)
	if err := repo.database.WithContext(ctx).
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order("position, id") }).
		Order("head_name, id").
		Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (repo *FamilyRepository) FindByID(ctx context.Context, familyID uint) (models.Family, error) {
	var family models.Family
	if err := repo.database.WithContext(ctx).
		Preload("Members", func(tx *gorm.DB) *gorm.DB { return tx.Order("position, id") }).
		First(&family, familyID).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (repo *FamilyRepository) Create(ctx context.Context, family *models.Family) error {
	for index := range family.Members {
		family.Members[index].Position = index
	}
	return repo.database.WithContext(ctx).Create(family).Error
}

// Update rewrites the household fields and replaces the member roster
// wholesale, matching the edit form's submit semantics.
func (repo *FamilyRepository) Update(ctx context.Context, familyID uint, family models.Family) (models.Family, error) {
	var updated models.Family
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Family
		if err := tx.First(&existing, familyID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Family{}).Where("id = ?", familyID).Updates(map[string]any{
			"head_name":      family.HeadName,
			"contact_number": family.ContactNumber,
			"address":        family.Address,
			"photo_ref":      family.PhotoRef,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("family_id = ?", familyID).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		for index := range family.Members {
			family.Members[index].ID = 0
			family.Members[index].FamilyID = familyID
			family.Members[index].Position = index
		}
		if len(family.Members) > 0 {
			if err := tx.Create(&family.Members).Error; err != nil {
				return err
			}
		}

		return tx.
			Preload("Members", func(inner *gorm.DB) *gorm.DB { return inner.Order("position, id") }).
			First(&updated, familyID).Error
	})
	if err != nil {
		return models.Family{}, err
	}
	return updated, nil
}

func (repo *FamilyRepository) Delete(ctx context.Context, familyID uint) (bool, error) {
	var deleted bool
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_id = ?", familyID).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Family{}, familyID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
