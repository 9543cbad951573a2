// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "biofit/internal/delivery/context"
	"biofit/internal/domain/entity"
	domainerrors "biofit/internal/domain/errors"
	"biofit/internal/domain/repository"
	"biofit/internal/domain/service"
	"biofit/internal/errors"
	"biofit/internal/usecase"
	"biofit/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FoodRepo  repository.FoodRepository
	Assets    service.AssetStore
	Catalog   service.FoodCatalog
	Logger    *slog.Logger
}

// foodService implements the FoodUsecase interface.
type foodService struct {
	txManager repository.TransactionManager
	foodRepo  repository.FoodRepository
	assets    service.AssetStore
	catalog   service.FoodCatalog
	logger    *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		txManager: params.TxManager,
		foodRepo:  params.FoodRepo,
		assets:    params.Assets,
		catalog:   params.Catalog,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByUser returns the user's foods ordered by name.
func (srv *foodService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FoodView, error) {
	foods, err := srv.foodRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find foods by user")
	}

	views := make([]*entity.FoodView, 0, len(foods))
	for _, food := range foods {
		views = append(views, entity.NewFoodView(food))
	}

	return views, nil
}

// GetByID returns a single food.
func (srv *foodService) GetByID(ctx context.Context, foodID uuid.UUID) (*entity.FoodView, error) {
	food, err := srv.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound.WrapMessage("food not found")
		}

		return nil, errors.Wrap(err, "failed to find food")
	}

	return entity.NewFoodView(food), nil
}

// Create stores a new food after checking the name is free for the user and the user exists.
func (srv *foodService) Create(ctx context.Context, input *entity.FoodView) (*entity.FoodView, error) {
	var created *entity.Food

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.FoodRepo()
		userRepo := repoFactory.UserRepo()

		// 1. The name must be free for this user
		_, err := foodRepo.FindByUserAndName(ctx, input.UserID, input.FoodName)
		if err == nil {
			return domainerrors.ErrFoodAlreadyExists.WrapMessage("food already exists")
		}
		if !errors.Is(err, repository.ErrFoodNotFound) {
			return errors.Wrap(err, "failed to check existing food")
		}

		// 2. The owner must exist
		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 3. Persist
		food := input.ToFood()
		if err := foodRepo.Create(ctx, food); err != nil {
			return errors.Wrap(err, "failed to create food")
		}
		created = food

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create food")
	}

	srv.log(ctx).Info("Food created",
		slog.String("foodID", created.ID.String()),
		slog.String("userID", created.UserID.String()),
	)

	return entity.NewFoodView(created), nil
}

// Update overwrites the mutable fields of an existing food.
func (srv *foodService) Update(ctx context.Context, input *entity.FoodView) (*entity.FoodView, error) {
	var updated *entity.Food

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.FoodRepo()

		food, err := foodRepo.FindByID(ctx, input.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return domainerrors.ErrFoodNotFound.WrapMessage("food not found")
			}

			return errors.Wrap(err, "failed to find food")
		}

		food.ApplyUpdate(input)

		if err := foodRepo.Update(ctx, food); err != nil {
			return errors.Wrap(err, "failed to update food")
		}
		updated = food

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update food")
	}

	return entity.NewFoodView(updated), nil
}

// Delete removes the food's consumption log entries and then the food, in one transaction.
func (srv *foodService) Delete(ctx context.Context, foodID uuid.UUID) error {
	var removedLogs int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.FoodRepo()
		foodDoneRepo := repoFactory.FoodDoneRepo()

		if _, err := foodRepo.FindByID(ctx, foodID); err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return domainerrors.ErrFoodNotFound.WithDetails("food not found with ID: " + foodID.String())
			}

			return errors.Wrap(err, "failed to find food")
		}

		// Log entries reference the food without ON DELETE CASCADE, so they go first.
		removed, err := foodDoneRepo.DeleteByFood(ctx, foodID)
		if err != nil {
			return errors.Wrap(err, "failed to delete food done records")
		}
		removedLogs = removed

		if err := foodRepo.Delete(ctx, foodID); err != nil {
			return errors.Wrap(err, "failed to delete food")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete food")
	}

	srv.log(ctx).Info("Food deleted",
		slog.String("foodID", foodID.String()),
		slog.Int64("removedFoodDone", removedLogs),
	)

	return nil
}

// SeedDefaults creates the default catalog for a user without foods.
// Any existing food blocks seeding. Items are created one by one and a failed item is skipped;
// an unknown user ends seeding without an error.
func (srv *foodService) SeedDefaults(ctx context.Context, userID uuid.UUID) (int, error) {
	logger := srv.log(ctx).With(slog.String("userID", userID.String()))

	count, err := srv.foodRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count foods by user")
	}
	if count > 0 {
		logger.Debug("User already has foods, skipping default seeding", slog.Int64("count", count))

		return 0, nil
	}

	start := time.Now()
	items := srv.catalog.DefaultFoods()
	created := 0

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return created, errors.Wrap(err, "default food seeding interrupted")
		}

		image := srv.loadImage(ctx, item.ImagePath)

		if _, err := srv.Create(ctx, item.ToFoodView(userID, image)); err != nil {
			// Every remaining item would fail the same way.
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				logger.Warn("User not found, stopping default food seeding", slog.Int("created", created))

				return created, nil
			}

			logger.Warn("Skipping default food",
				slog.String("foodName", item.Name),
				slog.Any("error", err),
			)

			continue
		}
		created++
	}

	logger.Info("Default foods seeded",
		slog.Int("created", created),
		slog.Int("catalogSize", len(items)),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)

	return created, nil
}

// loadImage reads an asset and returns nil on any failure so seeding is never blocked by a missing image.
func (srv *foodService) loadImage(ctx context.Context, key string) []byte {
	if key == "" {
		return nil
	}

	image, err := srv.assets.Read(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Failed to load asset, continuing without image",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil
	}

	return image
}
