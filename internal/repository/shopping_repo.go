package repository

import (
	"context"

	"gorm.io/gorm"
)

// IngredientLine — сырая строка состава для агрегации списка покупок:
// ингредиент одного рецепта из корзины с его количеством.
type IngredientLine struct {
	IngredientID    int64  `gorm:"column:ingredient_id"`
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int    `gorm:"column:amount"`
}

// ShoppingRepository отдаёт агрегатору списка покупок данные корзины.
// Вынесен в отдельный интерфейс, чтобы агрегатор тестировался
// против in-memory подмены без БД.
type ShoppingRepository interface {
	FindCartRecipeIDs(ctx context.Context, userID int64) ([]int64, error)
	FindIngredientLines(ctx context.Context, recipeIDs []int64) ([]IngredientLine, error)
}

type shoppingRepository struct {
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) FindCartRecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("baskets").
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	return ids, err
}

func (r *shoppingRepository) FindIngredientLines(ctx context.Context, recipeIDs []int64) ([]IngredientLine, error) {
	var lines []IngredientLine
	if len(recipeIDs) == 0 {
		return lines, nil
	}

	err := r.db.WithContext(ctx).
		Table("ingredient_recipes").
		Select("ingredient_recipes.ingredient_id, ingredients.name, ingredients.measurement_unit, ingredient_recipes.amount").
		Joins("JOIN ingredients ON ingredients.id = ingredient_recipes.ingredient_id").
		Where("ingredient_recipes.recipe_id IN ?", recipeIDs).
		Scan(&lines).Error
	return lines, err
}
