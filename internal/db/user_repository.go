package db

import (
	"context"
	"strings"

	"github.com/jobinkurian/parishdesk/internal/models"
	"gorm.io/gorm"
)

// duesTotalExpr recomputes the derived total from the four dues
// columns inside the database, so a partial update never works from a
// possibly stale client-side snapshot.
const duesTotalExpr = "monthly_collection + cleaning + common_work + funeral_fund"

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// UserChanges carries a partial update. Nil fields are left untouched.
type UserChanges struct {
	Name              *string
	PasswordHash      *string
	PhotoRef          *string
	MonthlyCollection *int64
	Cleaning          *int64
	CommonWork        *int64
	FuneralFund       *int64
	IsAdmin           *bool
}

func (changes UserChanges) touchesDues() bool {
	return changes.MonthlyCollection != nil || changes.Cleaning != nil ||
		changes.CommonWork != nil || changes.FuneralFund != nil
}

func (repo *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(ctx context.Context, userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var matched int64
	if err := repo.database.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// List returns all users, optionally filtered by a case-insensitive
// substring match on name or username.
func (repo *UserRepository) List(ctx context.Context, query string) ([]models.User, error) {
	users := make([]models.User, 0)
	tx := repo.database.WithContext(ctx).Order("name")
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		pattern := "%" + strings.ToLower(trimmed) + "%"
		tx = tx.Where("lower(name) LIKE ? OR lower(username) LIKE ?", pattern, pattern)
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a user with the derived total already set from the
// four dues fields; any client-supplied total is discarded.
func (repo *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Total = user.MonthlyCollection + user.Cleaning + user.CommonWork + user.FuneralFund
	return repo.database.WithContext(ctx).Create(user).Error
}

// Update applies the partial changes and, when any dues field is
// touched, recomputes the total in the same transaction with a SQL
// expression over the stored columns.
func (repo *UserRepository) Update(ctx context.Context, userID uint, changes UserChanges) (models.User, error) {
	var updated models.User
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.First(&existing, userID).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if changes.Name != nil {
			updates["name"] = *changes.Name
		}
		if changes.PasswordHash != nil {
			updates["password_hash"] = *changes.PasswordHash
		}
		if changes.PhotoRef != nil {
			updates["photo_ref"] = *changes.PhotoRef
		}
		if changes.MonthlyCollection != nil {
			updates["monthly_collection"] = *changes.MonthlyCollection
		}
		if changes.Cleaning != nil {
			updates["cleaning"] = *changes.Cleaning
		}
		if changes.CommonWork != nil {
			updates["common_work"] = *changes.CommonWork
		}
		if changes.FuneralFund != nil {
			updates["funeral_fund"] = *changes.FuneralFund
		}
		if changes.IsAdmin != nil {
			updates["is_admin"] = *changes.IsAdmin
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if changes.touchesDues() {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("total", gorm.Expr(duesTotalExpr)).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, userID).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// Delete removes a user and reports whether a row was actually
// deleted.
func (repo *UserRepository) Delete(ctx context.Context, userID uint) (bool, error) {
	result := repo.database.WithContext(ctx).Delete(&models.User{}, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
