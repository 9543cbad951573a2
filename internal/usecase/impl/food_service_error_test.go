package impl

import (
	"context"
	"testing"

	"biofit/internal/domain/entity"
	domainerrors "biofit/internal/domain/errors"
	"biofit/internal/domain/repository"
	mockRepo "biofit/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFoodService_GetByID_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().FindByID(ctx, foodID).Return(nil, repository.ErrFoodNotFound)

	view, err := fx.service.GetByID(ctx, foodID)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodNotFound))
}

func TestFoodService_ListByUser_StoreError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.foodRepo.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("db error"))

	views, err := fx.service.ListByUser(ctx, userID)

	assert.Nil(t, views)
	assert.Contains(t, err.Error(), "failed to find foods by user")
}

func TestFoodService_Create_DuplicateName(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &entity.FoodView{UserID: userID, FoodName: "Táo", Session: entity.SessionSnack, Date: "2025-01-01"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

		foodRepo.EXPECT().FindByUserAndName(ctx, userID, "Táo").Return(&entity.Food{ID: uuid.New(), UserID: userID, FoodName: "Táo"}, nil)
	})

	view, err := fx.service.Create(ctx, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodAlreadyExists))
}

func TestFoodService_Create_UserNotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &entity.FoodView{UserID: userID, FoodName: "Táo", Session: entity.SessionSnack, Date: "2025-01-01"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		foodRepo.EXPECT().FindByUserAndName(ctx, userID, "Táo").Return(nil, repository.ErrFoodNotFound)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	view, err := fx.service.Create(ctx, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestFoodService_Create_LookupError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &entity.FoodView{UserID: userID, FoodName: "Táo"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

		foodRepo.EXPECT().FindByUserAndName(ctx, userID, "Táo").Return(nil, errors.New("db error"))
	})

	_, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check existing food")
	assert.False(t, errors.Is(err, domainerrors.ErrFoodAlreadyExists))
}

func TestFoodService_Update_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	input := &entity.FoodView{FoodID: uuid.New(), FoodName: "Phở gà"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)

		foodRepo.EXPECT().FindByID(ctx, input.FoodID).Return(nil, repository.ErrFoodNotFound)
	})

	view, err := fx.service.Update(ctx, input)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodNotFound))
}

func TestFoodService_Delete_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)
		factory.EXPECT().FoodDoneRepo().Return(mockRepo.NewMockFoodDoneRepository(t))

		foodRepo.EXPECT().FindByID(ctx, foodID).Return(nil, repository.ErrFoodNotFound)
	})

	err := fx.service.Delete(ctx, foodID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), foodID.String())
}

func TestFoodService_Delete_FoodDoneError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		foodRepo := mockRepo.NewMockFoodRepository(t)
		foodDoneRepo := mockRepo.NewMockFoodDoneRepository(t)
		factory.EXPECT().FoodRepo().Return(foodRepo)
		factory.EXPECT().FoodDoneRepo().Return(foodDoneRepo)

		foodRepo.EXPECT().FindByID(ctx, foodID).Return(&entity.Food{ID: foodID}, nil)
		foodDoneRepo.EXPECT().DeleteByFood(ctx, foodID).Return(0, errors.New("db error"))
	})

	err := fx.service.Delete(ctx, foodID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete food done records")
}

func TestFoodService_SeedDefaults_CountError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.foodRepo.EXPECT().CountByUser(ctx, userID).Return(0, errors.New("db error"))

	created, err := fx.service.SeedDefaults(ctx, userID)

	assert.Zero(t, created)
	assert.Contains(t, err.Error(), "failed to count foods by user")
}

func TestFoodService_SeedDefaults_StopsQuietlyForMissingUser(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []entity.CatalogItem{
		{Name: "Phở bò", Session: entity.SessionMorning, Date: "2025-01-01"},
		{Name: "Táo", Session: entity.SessionSnack, Date: "2025-01-01"},
	}

	fx.foodRepo.EXPECT().CountByUser(ctx, userID).Return(0, nil)
	fx.catalog.EXPECT().DefaultFoods().Return(items)

	txFoodRepo := mockRepo.NewMockFoodRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	fx.onEveryExecute(ctx, txFoodRepo, txUserRepo)

	txFoodRepo.EXPECT().FindByUserAndName(ctx, userID, "Phở bò").Return(nil, repository.ErrFoodNotFound).Once()
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()

	created, err := fx.service.SeedDefaults(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestFoodService_SeedDefaults_StopsWhenCanceled(t *testing.T) {
	fx := createTestFoodService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	userID := uuid.New()

	fx.foodRepo.EXPECT().CountByUser(ctx, userID).Return(0, nil)
	fx.catalog.EXPECT().DefaultFoods().Return([]entity.CatalogItem{
		{Name: "Phở bò", Session: entity.SessionMorning, Date: "2025-01-01"},
	})

	created, err := fx.service.SeedDefaults(ctx, userID)

	assert.Zero(t, created)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFoodService_Execute_PropagatesTransactionError(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("failed to begin transaction"))

	_, err := fx.service.Update(ctx, &entity.FoodView{FoodID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}
