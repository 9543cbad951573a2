package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodDoneModel is the GORM-specific struct for the 'food_done' table.
// food_id references foods.id without ON DELETE CASCADE.
type FoodDoneModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FoodID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      string    `gorm:"type:varchar(10);not null"`
	Session   string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time

	Food *FoodModel `gorm:"foreignKey:FoodID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodDoneModel) TableName() string {
	return "food_done"
}
