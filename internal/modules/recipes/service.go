package recipes

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/utils"
	"foodgram/internal/repository"
)

// Service содержит бизнес-логику рецептов: CRUD с полной заменой состава,
// избранное и корзину покупок.
type Service struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
	favorites   repository.FavoriteRepository
	baskets     repository.BasketRepository
	subscribes  repository.SubscribeRepository
	mediaRoot   string
}

func NewService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	favorites repository.FavoriteRepository,
	baskets repository.BasketRepository,
	subscribes repository.SubscribeRepository,
	mediaRoot string,
) *Service {
	return &Service{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		favorites:   favorites,
		baskets:     baskets,
		subscribes:  subscribes,
		mediaRoot:   mediaRoot,
	}
}

// Get возвращает форму чтения рецепта; флаги is_subscribed,
// is_favorited и is_in_shopping_cart вычисляются для requesterID
// (0 — анонимный запрос, все флаги false).
func (s *Service) Get(ctx context.Context, requesterID, id int64) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	resp, err := s.toResponse(ctx, requesterID, recipe)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// List возвращает рецепты от новых к старым; limit 0 — без ограничения.
func (s *Service) List(ctx context.Context, requesterID int64, limit, offset int) ([]RecipeResponse, error) {
	recipes, _, err := s.recipes.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.toResponse(ctx, requesterID, &recipes[i])
		if err != nil {
			return nil, err
		}
		results = append(results, resp)
	}

	return results, nil
}

func (s *Service) Create(ctx context.Context, authorID int64, req WriteRecipeRequest) (*RecipeResponse, error) {
	if err := validateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}

	lines, err := s.validateComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return nil, err
	}

	if req.Image == "" {
		return nil, ErrInvalidImage
	}
	imagePath, err := s.saveImage(req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    authorID,
	}

	if err := s.recipes.Create(ctx, recipe, req.Tags, lines); err != nil {
		return nil, err
	}

	return s.Get(ctx, authorID, recipe.ID)
}

// Update заменяет рецепт целиком: поля, набор тегов и строки состава.
// Любая ошибка валидации отклоняет запрос до первой записи, поэтому
// прежний состав остаётся нетронутым.
func (s *Service) Update(ctx context.Context, requesterID, id int64, req WriteRecipeRequest) (*RecipeResponse, error) {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}

	if err := validateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}

	lines, err := s.validateComposition(ctx, req.Tags, req.Ingredients)
	if err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if req.Image != "" {
		imagePath, err = s.saveImage(req.Image)
		if err != nil {
			return nil, err
		}
	}

	recipe := &domain.Recipe{
		ID:          id,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    existing.AuthorID,
	}

	if err := s.recipes.Replace(ctx, recipe, req.Tags, lines); err != nil {
		return nil, err
	}

	return s.Get(ctx, requesterID, id)
}

func (s *Service) Delete(ctx context.Context, requesterID, id int64) error {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if existing.AuthorID != requesterID {
		return ErrNotAuthor
	}

	return s.recipes.Delete(ctx, id)
}

func (s *Service) AddFavorite(ctx context.Context, userID, recipeID int64) (*RecipeBriefResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	if err := s.favorites.Add(ctx, userID, recipeID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	brief := ToRecipeBriefResponse(recipe)
	return &brief, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	if err := s.favorites.Remove(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFavorited
		}
		return err
	}
	return nil
}

func (s *Service) AddToCart(ctx context.Context, userID, recipeID int64) (*RecipeBriefResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.baskets.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	if err := s.baskets.Add(ctx, userID, recipeID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}

	brief := ToRecipeBriefResponse(recipe)
	return &brief, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	if err := s.baskets.Remove(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInCart
		}
		return err
	}
	return nil
}

// validateComposition проверяет состав по всем предусловиям замены:
// непустые наборы, отсутствие дублей, минимальное количество,
// существование тегов и ингредиентов в каталоге. Возвращает готовые
// строки состава (RecipeID проставит репозиторий).
func (s *Service) validateComposition(ctx context.Context, tagIDs []int64, ingredients []IngredientAmountRequest) ([]domain.IngredientRecipe, error) {
	if len(tagIDs) == 0 {
		return nil, ErrNoTags
	}
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	seenTags := make(map[int64]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seenTags[id] {
			return nil, ErrDuplicateTag
		}
		seenTags[id] = true
	}

	seenIngredients := make(map[int64]bool, len(ingredients))
	ingredientIDs := make([]int64, 0, len(ingredients))
	for _, line := range ingredients {
		if seenIngredients[line.ID] {
			return nil, ErrDuplicateIngredient
		}
		seenIngredients[line.ID] = true
		if line.Amount < domain.MinAmount {
			return nil, ErrInvalidAmount
		}
		ingredientIDs = append(ingredientIDs, line.ID)
	}

	tags, err := s.tags.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, ErrTagNotFound
	}

	known, err := s.ingredients.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	if len(known) != len(ingredientIDs) {
		return nil, ErrIngredientNotFound
	}

	lines := make([]domain.IngredientRecipe, 0, len(ingredients))
	for _, line := range ingredients {
		lines = append(lines, domain.IngredientRecipe{
			IngredientID: line.ID,
			Amount:       line.Amount,
		})
	}

	return lines, nil
}

func validateCookingTime(minutes int) error {
	if minutes < domain.MinCookingTime || minutes > domain.MaxCookingTime {
		return ErrInvalidCookingTime
	}
	return nil
}

func (s *Service) saveImage(data string) (string, error) {
	ext, raw, err := utils.DecodeBase64Image(data)
	if err != nil {
		return "", ErrInvalidImage
	}

	dir := filepath.Join(s.mediaRoot, "recipes", "image")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", err
	}

	return "/media/recipes/image/" + name, nil
}

func (s *Service) toResponse(ctx context.Context, requesterID int64, recipe *domain.Recipe) (RecipeResponse, error) {
	var isSubscribed, isFavorited, inCart bool

	if requesterID != 0 {
		var err error
		if isSubscribed, err = s.subscribes.Exists(ctx, requesterID, recipe.AuthorID); err != nil {
			return RecipeResponse{}, err
		}
		if isFavorited, err = s.favorites.Exists(ctx, requesterID, recipe.ID); err != nil {
			return RecipeResponse{}, err
		}
		if inCart, err = s.baskets.Exists(ctx, requesterID, recipe.ID); err != nil {
			return RecipeResponse{}, err
		}
	}

	return ToRecipeResponse(recipe, isSubscribed, isFavorited, inCart), nil
}
