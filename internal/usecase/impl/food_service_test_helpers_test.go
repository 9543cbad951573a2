package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"biofit/internal/domain/repository"
	mockRepo "biofit/internal/mocks/repository"
	mockSvc "biofit/internal/mocks/service"
	"biofit/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// foodServiceFixtures holds all test dependencies for food service tests.
type foodServiceFixtures struct {
	t         *testing.T
	service   usecase.FoodUsecase
	txManager *mockRepo.MockTransactionManager
	foodRepo  *mockRepo.MockFoodRepository
	assets    *mockSvc.MockAssetStore
	catalog   *mockSvc.MockFoodCatalog
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	foodRepo := mockRepo.NewMockFoodRepository(t)
	assets := mockSvc.NewMockAssetStore(t)
	catalog := mockSvc.NewMockFoodCatalog(t)

	service := NewFoodService(FoodServiceParams{
		TxManager: txManager,
		FoodRepo:  foodRepo,
		Assets:    assets,
		Catalog:   catalog,
		Logger:    newDiscardLogger(),
	})

	return foodServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		foodRepo:  foodRepo,
		assets:    assets,
		catalog:   catalog,
	}
}

// onExecute expects a single transaction and runs fn against a factory prepared by setup.
// The transaction returns whatever fn returns.
func (f foodServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// onEveryExecute routes any number of transactions to the same repositories.
func (f foodServiceFixtures) onEveryExecute(ctx context.Context, foodRepo repository.FoodRepository, userRepo repository.UserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(f.t)
	factory.EXPECT().FoodRepo().Return(foodRepo).Maybe()
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
