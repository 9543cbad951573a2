package postgres

import (
	"context"

	"biofit/internal/domain/repository"
	"biofit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodDoneRepository implements the repository.FoodDoneRepository interface.
type foodDoneRepository struct {
	db *gorm.DB
}

// NewFoodDoneRepository is the constructor for foodDoneRepository.
func NewFoodDoneRepository(db *gorm.DB) repository.FoodDoneRepository {
	return &foodDoneRepository{
		db: db,
	}
}

// DeleteByFood removes every log entry that references the food.
func (repo *foodDoneRepository) DeleteByFood(ctx context.Context, foodID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Delete(&model.FoodDoneModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete food done records")
	}

	return result.RowsAffected, nil
}

// CountByFood returns how many log entries reference the food.
func (repo *foodDoneRepository) CountByFood(ctx context.Context, foodID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FoodDoneModel{}).
		Where("food_id = ?", foodID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count food done records")
	}

	return count, nil
}
