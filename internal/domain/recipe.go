package domain

import "time"

// Границы валидации рецепта.
const (
	MinCookingTime = 1
	MaxCookingTime = 300
	MinAmount      = 1
)

// Recipe — рецепт с композицией из тегов и ингредиентов.
// Состав (строки ингредиентов и набор тегов) заменяется целиком
// при каждом изменении рецепта, всегда в одной транзакции.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Image       string    `json:"image"`
	Text        string    `json:"text" gorm:"not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	PubDate     time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`

	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:tag_recipes;constraint:OnDelete:CASCADE"`
	Ingredients []IngredientRecipe `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (Recipe) TableName() string { return "recipes" }

// IngredientRecipe — строка состава: ингредиент и его количество в рецепте.
// Пара (recipe, ingredient) уникальна — один и тот же ингредиент
// не может входить в рецепт дважды.
type IngredientRecipe struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null"`

	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

func (IngredientRecipe) TableName() string { return "ingredient_recipes" }
