package service

import "biofit/internal/domain/entity"

// FoodCatalog provides the default foods seeded for a user with no foods.
type FoodCatalog interface {
	// DefaultFoods returns the catalog entries in seeding order.
	DefaultFoods() []entity.CatalogItem
}
