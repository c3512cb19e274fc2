package recipes

import (
	"foodgram/internal/domain"
)

// Формы записи и чтения разделены намеренно: на запись рецепт приходит
// идентификаторами тегов и ингредиентов, на чтение отдаётся полными
// объектами каталога.

// IngredientAmountRequest — одна строка состава в запросе.
type IngredientAmountRequest struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required"`
}

// WriteRecipeRequest — форма создания и полной замены рецепта.
type WriteRecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required"`
	Tags        []int64                   `json:"tags" binding:"required"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name" binding:"required"`
	Text        string                    `json:"text" binding:"required"`
	CookingTime int                       `json:"cooking_time" binding:"required"`
}

// AuthorResponse — автор рецепта в форме чтения.
type AuthorResponse struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeIngredientResponse — строка состава в форме чтения.
type RecipeIngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse — полная форма чтения рецепта.
type RecipeResponse struct {
	ID               int64                      `json:"id"`
	Tags             []domain.Tag               `json:"tags"`
	Author           AuthorResponse             `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeBriefResponse — краткая форма для избранного и корзины.
type RecipeBriefResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// ToRecipeResponse собирает форму чтения из сущности с загруженными
// связями и флагов, вычисленных для текущего пользователя.
func ToRecipeResponse(r *domain.Recipe, isSubscribed, isFavorited, inCart bool) RecipeResponse {
	resp := RecipeResponse{
		ID:               r.ID,
		Tags:             r.Tags,
		IsFavorited:      isFavorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
	if resp.Tags == nil {
		resp.Tags = []domain.Tag{}
	}

	if r.Author != nil {
		resp.Author = AuthorResponse{
			Email:        r.Author.Email,
			ID:           r.Author.ID,
			Username:     r.Author.Username,
			FirstName:    r.Author.FirstName,
			LastName:     r.Author.LastName,
			IsSubscribed: isSubscribed,
		}
	}

	resp.Ingredients = make([]RecipeIngredientResponse, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		item := RecipeIngredientResponse{
			ID:     line.IngredientID,
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}

	return resp
}

func ToRecipeBriefResponse(r *domain.Recipe) RecipeBriefResponse {
	return RecipeBriefResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
