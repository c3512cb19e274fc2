package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// BasketRepository определяет методы для работы с корзиной покупок.
type BasketRepository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

type basketRepository struct {
	db *gorm.DB
}

func NewBasketRepository(db *gorm.DB) BasketRepository {
	return &basketRepository{db: db}
}

// Add создаёт запись корзины. Дубликат пары (user, recipe) упирается
// в уникальный индекс — вызывающий различает это через IsUniqueViolation.
func (r *basketRepository) Add(ctx context.Context, userID, recipeID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Basket{
		UserID:   userID,
		RecipeID: recipeID,
	}).Error
}

func (r *basketRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.Basket{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *basketRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Basket{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
