// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"biofit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for food persistence.
var (
	// ErrFoodNotFound is returned when a food is not found.
	ErrFoodNotFound = errors.New("food not found")
)

// FoodRepository defines the interface for food-related database operations.
type FoodRepository interface {
	// FindByUser retrieves all foods owned by a user ordered by name ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error)

	// FindByUserAndName retrieves the user's food with the given name.
	FindByUserAndName(ctx context.Context, userID uuid.UUID, foodName string) (*entity.Food, error)

	// FindByID retrieves a food by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// CountByUser returns how many foods a user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists a new food and sets its generated ID.
	Create(ctx context.Context, food *entity.Food) error

	// Update overwrites a stored food with the given values.
	Update(ctx context.Context, food *entity.Food) error

	// Delete removes a food by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
