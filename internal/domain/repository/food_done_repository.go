package repository

import (
	"context"

	"github.com/google/uuid"
)

// FoodDoneRepository defines operations on the consumption log.
type FoodDoneRepository interface {
	// DeleteByFood removes every log entry that references the food and returns how many were removed.
	DeleteByFood(ctx context.Context, foodID uuid.UUID) (int64, error)

	// CountByFood returns how many log entries reference the food.
	CountByFood(ctx context.Context, foodID uuid.UUID) (int64, error)
}
