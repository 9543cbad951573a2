// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"biofit/internal/domain/entity"
	domainerrors "biofit/internal/domain/errors"
	"biofit/internal/domain/repository"
	"biofit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// FindByUser retrieves all foods owned by a user ordered by name ascending.
func (repo *foodRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("food_name ASC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by user")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// FindByUserAndName retrieves the user's food with the given name.
func (repo *foodRepository) FindByUserAndName(ctx context.Context, userID uuid.UUID, foodName string) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND food_name = ?", userID, foodName).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by user and name")
	}

	return toFoodDomain(&foodM), nil
}

// FindByID retrieves a food by its unique ID.
func (repo *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return toFoodDomain(&foodM), nil
}

// CountByUser returns how many foods a user owns.
// It always reads from the primary so a seed right after signup sees the foods it just wrote.
func (repo *foodRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.FoodModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count foods by user")
	}

	return count, nil
}

// Create persists a new food and sets its generated ID.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFoodAlreadyExists.WrapMessage("duplicate food name for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	food.ID = foodM.ID

	return nil
}

// Update overwrites every column of a stored food except its owner.
func (repo *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	result := repo.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("id = ?", food.ID).
		Select("*").
		Omit("id", "user_id").
		Updates(foodM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update food")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// Delete removes a food by its ID.
func (repo *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "food is still referenced")
		}

		return errors.Wrap(result.Error, "failed to delete food")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:              data.ID,
		UserID:          data.UserID,
		FoodName:        data.FoodName,
		Session:         entity.Session(data.Session),
		Date:            data.Date,
		FoodImage:       data.FoodImage,
		ServingSize:     data.ServingSize,
		ServingSizeUnit: data.ServingSizeUnit,
		Mass:            data.Mass,
		Nutrients: entity.Nutrients{
			Calories:     data.Calories,
			Protein:      data.Protein,
			Carbohydrate: data.Carbohydrate,
			Fat:          data.Fat,
			Sodium:       data.Sodium,
		},
	}
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:              data.ID,
		UserID:          data.UserID,
		FoodName:        data.FoodName,
		Session:         data.Session.String(),
		Date:            data.Date,
		FoodImage:       data.FoodImage,
		ServingSize:     data.ServingSize,
		ServingSizeUnit: data.ServingSizeUnit,
		Mass:            data.Mass,
		Calories:        data.Calories,
		Protein:         data.Protein,
		Carbohydrate:    data.Carbohydrate,
		Fat:             data.Fat,
		Sodium:          data.Sodium,
	}
}
