package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// IngredientRepository определяет методы для работы с каталогом ингредиентов.
type IngredientRepository interface {
	Create(ctx context.Context, i *domain.Ingredient) error
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
	// List возвращает каталог; непустой name фильтрует по префиксу названия.
	List(ctx context.Context, name string) ([]domain.Ingredient, error)
	ExistsByNameUnit(ctx context.Context, name, measurementUnit string) (bool, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, i *domain.Ingredient) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var i domain.Ingredient
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) List(ctx context.Context, name string) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient

	query := r.db.WithContext(ctx).Order("name ASC")
	if name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}

	err := query.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) ExistsByNameUnit(ctx context.Context, name, measurementUnit string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Ingredient{}).
		Where("name = ? AND measurement_unit = ?", name, measurementUnit).
		Count(&count).Error
	return count > 0, err
}
