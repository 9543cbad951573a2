package model

import (
	"github.com/google/uuid"
)

// FoodModel is the GORM-specific struct for the 'foods' table.
// (user_id, food_name) is indexed but deliberately not unique; uniqueness is checked by the service.
type FoodModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_foods_user_name,priority:1"`
	FoodName        string    `gorm:"type:varchar(255);not null;index:idx_foods_user_name,priority:2"`
	Session         string    `gorm:"type:varchar(20);not null"`
	Date            string    `gorm:"type:varchar(10);not null"`
	FoodImage       []byte    `gorm:"type:bytea"`
	ServingSize     float64   `gorm:"not null;default:0"`
	ServingSizeUnit string    `gorm:"type:varchar(50);not null;default:''"`
	Mass            float64   `gorm:"not null;default:0"`
	Calories        float64   `gorm:"not null;default:0"`
	Protein         float64   `gorm:"not null;default:0"`
	Carbohydrate    float64   `gorm:"not null;default:0"`
	Fat             float64   `gorm:"not null;default:0"`
	Sodium          float64   `gorm:"not null;default:0"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
