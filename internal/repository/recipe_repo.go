package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// RecipeRepository определяет методы для работы с рецептами и их составом.
// Create и Replace выполняются в одной транзакции: теги и строки
// ингредиентов либо записываются целиком, либо не записываются вовсе.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error
	// Replace сохраняет поля рецепта и заменяет состав целиком:
	// прежние связи тегов и строки ингредиентов удаляются и создаются заново.
	Replace(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, limit, offset int) ([]domain.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func tagRefs(tagIDs []int64) []domain.Tag {
	tags := make([]domain.Tag, len(tagIDs))
	for i, id := range tagIDs {
		tags[i] = domain.Tag{ID: id}
	}
	return tags
}

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Append(tagRefs(tagIDs)); err != nil {
			return err
		}

		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		return tx.Create(&lines).Error
	})
}

func (r *recipeRepository) Replace(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Recipe{ID: recipe.ID}).
			Select("name", "image", "text", "cooking_time").
			Updates(map[string]any{
				"name":         recipe.Name,
				"image":        recipe.Image,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Model(&domain.Recipe{ID: recipe.ID}).Association("Tags").Replace(tagRefs(tagIDs)); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&domain.IngredientRecipe{}).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].ID = 0
			lines[i].RecipeID = recipe.ID
		}
		return tx.Create(&lines).Error
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, limit, offset int) ([]domain.Recipe, int64, error) {
	var recipes []domain.Recipe
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.Recipe{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("pub_date DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	var recipes []domain.Recipe

	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// Delete удаляет рецепт вместе со строками состава, связями тегов
// и записями корзин и избранного (каскад на уровне приложения:
// SQLite в локальной разработке не всегда применяет FK-каскады).
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.IngredientRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.Basket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}
