package handler

import (
	"log/slog"
	"net/http"

	"biofit/internal/delivery/api/response"
	"biofit/internal/domain/entity"
	"biofit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler holds dependencies for food-related handlers
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// FoodFields are the mutable fields shared by create and update requests.
// FoodImage is base64 in JSON.
type FoodFields struct {
	FoodName        string  `json:"foodName" validate:"required,max=255"`
	Session         string  `json:"session" validate:"required,session"`
	Date            string  `json:"date" validate:"required,date"`
	FoodImage       []byte  `json:"foodImage"`
	ServingSize     float64 `json:"servingSize" validate:"gte=0"`
	ServingSizeUnit string  `json:"servingSizeUnit" validate:"max=50"`
	Mass            float64 `json:"mass" validate:"gte=0"`
	Calories        float64 `json:"calories" validate:"gte=0"`
	Protein         float64 `json:"protein" validate:"gte=0"`
	Carbohydrate    float64 `json:"carbohydrate" validate:"gte=0"`
	Fat             float64 `json:"fat" validate:"gte=0"`
	Sodium          float64 `json:"sodium" validate:"gte=0"`
}

// CreateFoodRequest represents the request body for creating a food
type CreateFoodRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	FoodFields
}

// UpdateFoodRequest represents the request body for updating a food.
// Omitting foodImage keeps the stored image.
type UpdateFoodRequest struct {
	FoodFields
}

// SeedResult is returned by SeedDefaultFoods.
type SeedResult struct {
	Created int `json:"created"`
}

func (f FoodFields) toView(foodID, userID uuid.UUID) *entity.FoodView {
	return &entity.FoodView{
		FoodID:          foodID,
		UserID:          userID,
		FoodName:        f.FoodName,
		Session:         entity.Session(f.Session),
		Date:            f.Date,
		FoodImage:       f.FoodImage,
		ServingSize:     f.ServingSize,
		ServingSizeUnit: f.ServingSizeUnit,
		Mass:            f.Mass,
		Nutrients: entity.Nutrients{
			Calories:     f.Calories,
			Protein:      f.Protein,
			Carbohydrate: f.Carbohydrate,
			Fat:          f.Fat,
			Sodium:       f.Sodium,
		},
	}
}

// bindAndValidate binds the body into req and renders the 400 itself on failure.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Invalid food input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid food input", err)
	}

	return true, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// ListUserFoods handles listing a user's foods ordered by name
func (h *FoodHandler) ListUserFoods(c echo.Context) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	foods, err := h.foodUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// SeedDefaultFoods handles seeding the default catalog for a user without foods
func (h *FoodHandler) SeedDefaultFoods(c echo.Context) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	created, err := h.foodUC.SeedDefaults(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SeedResult{Created: created})
}

// GetFood handles retrieving a single food
func (h *FoodHandler) GetFood(c echo.Context) error {
	foodID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid food ID")
	}

	food, err := h.foodUC.GetByID(c.Request().Context(), foodID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// CreateFood handles creating a food
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var req CreateFoodRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	food, err := h.foodUC.Create(c.Request().Context(), req.toView(uuid.Nil, uuid.MustParse(req.UserID)))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, food)
}

// UpdateFood handles overwriting a food
func (h *FoodHandler) UpdateFood(c echo.Context) error {
	foodID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid food ID")
	}

	var req UpdateFoodRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	food, err := h.foodUC.Update(c.Request().Context(), req.toView(foodID, uuid.Nil))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// DeleteFood handles deleting a food and its consumption log
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	foodID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid food ID")
	}

	if err := h.foodUC.Delete(c.Request().Context(), foodID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Food deleted successfully"})
}
