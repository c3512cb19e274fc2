package users

import "foodgram/internal/domain"

// UserResponse — форма чтения пользователя; is_subscribed вычисляется
// относительно того, кто спрашивает.
type UserResponse struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeBrief — краткая форма рецепта внутри подписок.
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// SubscriptionResponse — автор из подписок с его рецептами.
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

// UserListResponse — постраничный список пользователей.
type UserListResponse struct {
	Count   int64          `json:"count"`
	Results []UserResponse `json:"results"`
}

// SubscriptionListResponse — постраничный список подписок.
type SubscriptionListResponse struct {
	Count   int64                  `json:"count"`
	Results []SubscriptionResponse `json:"results"`
}

func ToUserResponse(u *domain.User, isSubscribed bool) UserResponse {
	return UserResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

func toRecipeBriefs(recipes []domain.Recipe) []RecipeBrief {
	briefs := make([]RecipeBrief, len(recipes))
	for i, r := range recipes {
		briefs[i] = RecipeBrief{
			ID:          r.ID,
			Name:        r.Name,
			Image:       r.Image,
			CookingTime: r.CookingTime,
		}
	}
	return briefs
}
