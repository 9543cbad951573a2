package entity

import "github.com/google/uuid"

// CatalogItem is one entry of the default food catalog seeded for new users.
type CatalogItem struct {
	Name            string
	Date            string
	Session         Session
	ImagePath       string // Key in the asset store.
	ServingSize     float64
	ServingSizeUnit string
	Mass            float64
	Nutrients
}

// ToFoodView builds the creation payload for userID with the given image.
func (c CatalogItem) ToFoodView(userID uuid.UUID, image []byte) *FoodView {
	return &FoodView{
		UserID:          userID,
		FoodName:        c.Name,
		Session:         c.Session,
		Date:            c.Date,
		FoodImage:       image,
		ServingSize:     c.ServingSize,
		ServingSizeUnit: c.ServingSizeUnit,
		Mass:            c.Mass,
		Nutrients:       c.Nutrients,
	}
}
