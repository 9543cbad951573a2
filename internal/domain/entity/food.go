package entity

import (
	"github.com/google/uuid"
)

// DateLayout is the layout of Food.Date.
const DateLayout = "2006-01-02"

// Nutrients are the nutrition facts of one serving.
type Nutrients struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbohydrate float64 `json:"carbohydrate"`
	Fat          float64 `json:"fat"`
	Sodium       float64 `json:"sodium"`
}

// Food is one food item belonging to exactly one user.
// (UserID, FoodName) is unique per user on a best-effort basis; see FoodUsecase.Create.
type Food struct {
	ID              uuid.UUID // Assigned by the store on creation.
	UserID          uuid.UUID // The owning user.
	FoodName        string
	Session         Session
	Date            string // YYYY-MM-DD
	FoodImage       []byte // nil when the food has no image.
	ServingSize     float64
	ServingSizeUnit string
	Mass            float64 // grams
	Nutrients
}

// FoodView is the flat request/response shape of a Food.
// FoodID is uuid.Nil for payloads that intend to create a food.
type FoodView struct {
	FoodID          uuid.UUID `json:"foodId"`
	UserID          uuid.UUID `json:"userId"`
	FoodName        string    `json:"foodName"`
	Session         Session   `json:"session"`
	Date            string    `json:"date"`
	FoodImage       []byte    `json:"foodImage,omitempty"`
	ServingSize     float64   `json:"servingSize"`
	ServingSizeUnit string    `json:"servingSizeUnit"`
	Mass            float64   `json:"mass"`
	Nutrients
}

// NewFoodView projects a Food into its view.
func NewFoodView(food *Food) *FoodView {
	if food == nil {
		return nil
	}

	return &FoodView{
		FoodID:          food.ID,
		UserID:          food.UserID,
		FoodName:        food.FoodName,
		Session:         food.Session,
		Date:            food.Date,
		FoodImage:       food.FoodImage,
		ServingSize:     food.ServingSize,
		ServingSizeUnit: food.ServingSizeUnit,
		Mass:            food.Mass,
		Nutrients:       food.Nutrients,
	}
}

// ToFood builds a new Food from the view. The ID is left for the store to assign.
func (v *FoodView) ToFood() *Food {
	return &Food{
		UserID:          v.UserID,
		FoodName:        v.FoodName,
		Session:         v.Session,
		Date:            v.Date,
		FoodImage:       v.FoodImage,
		ServingSize:     v.ServingSize,
		ServingSizeUnit: v.ServingSizeUnit,
		Mass:            v.Mass,
		Nutrients:       v.Nutrients,
	}
}

// ApplyUpdate overwrites every mutable field with the view's values.
// The image is only replaced when the view carries one.
func (f *Food) ApplyUpdate(v *FoodView) {
	f.FoodName = v.FoodName
	f.Session = v.Session
	f.Date = v.Date
	if v.FoodImage != nil {
		f.FoodImage = v.FoodImage
	}
	f.ServingSize = v.ServingSize
	f.ServingSizeUnit = v.ServingSizeUnit
	f.Mass = v.Mass
	f.Nutrients = v.Nutrients
}
