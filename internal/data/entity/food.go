package entity

type FoodCategory string

const (
	FoodCategorySnack FoodCategory = "snack"
	FoodCategoryDrink FoodCategory = "drink"
	FoodCategoryCombo FoodCategory = "combo"
)

type Food struct {
	Base
	Name        string       `db:"name"`
	Category    FoodCategory `db:"category"`
	Price       float64      `db:"price"`
	Description *string      `db:"description"`
	ImageURL    *string      `db:"image_url"`
	IsAvailable bool         `db:"is_available"`
}
