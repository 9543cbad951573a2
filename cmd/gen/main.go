// Command gen generates type-safe GORM query helpers for the food tables.
package main

import (
	"biofit/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.FoodModel{},
		model.FoodDoneModel{},
	)

	g.Execute()
}
