package recipes

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("only the author can modify the recipe")

	// Ошибки валидации состава (весь запрос отклоняется целиком).
	ErrNoTags              = errors.New("recipe must have at least one tag")
	ErrNoIngredients       = errors.New("recipe must have at least one ingredient")
	ErrDuplicateTag        = errors.New("duplicate tag in recipe")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	ErrInvalidAmount       = errors.New("ingredient amount must be at least 1")
	ErrInvalidCookingTime  = errors.New("cooking time out of range")
	ErrInvalidImage        = errors.New("invalid image payload")

	// Ссылки на несуществующие записи каталога.
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")

	// Повторные действия с избранным и корзиной.
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrNotFavorited     = errors.New("recipe not in favorites")
	ErrAlreadyInCart    = errors.New("recipe already in shopping cart")
	ErrNotInCart        = errors.New("recipe not in shopping cart")
)
