package usecase

import (
	"context"

	"biofit/internal/domain/entity"

	"github.com/google/uuid"
)

// FoodUsecase defines the lifecycle operations on a user's food entries.
//
// Outcomes other than success are returned as domain errors and must be
// checked with errors.Is: domainerrors.ErrFoodNotFound,
// domainerrors.ErrFoodAlreadyExists and domainerrors.ErrUserNotFound.
type FoodUsecase interface {
	// ListByUser returns the user's foods ordered by name. An unknown user yields an empty list.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FoodView, error)

	// GetByID returns a single food.
	GetByID(ctx context.Context, foodID uuid.UUID) (*entity.FoodView, error)

	// Create stores a new food for input.UserID.
	// The duplicate-name check and the insert are not atomic against concurrent creates.
	Create(ctx context.Context, input *entity.FoodView) (*entity.FoodView, error)

	// Update overwrites the food identified by input.FoodID. A nil image keeps the stored one.
	Update(ctx context.Context, input *entity.FoodView) (*entity.FoodView, error)

	// Delete removes a food together with its consumption log entries.
	Delete(ctx context.Context, foodID uuid.UUID) error

	// SeedDefaults creates the default catalog for a user who owns no foods yet
	// and returns how many foods were created.
	SeedDefaults(ctx context.Context, userID uuid.UUID) (int, error)
}
