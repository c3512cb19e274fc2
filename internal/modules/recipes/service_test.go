package recipes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// Mock repositories

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error {
	args := m.Called(ctx, recipe, tagIDs, lines)
	if recipe != nil && recipe.ID == 0 {
		recipe.ID = 99 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockRecipeRepo) Replace(ctx context.Context, recipe *domain.Recipe, tagIDs []int64, lines []domain.IngredientRecipe) error {
	args := m.Called(ctx, recipe, tagIDs, lines)
	return args.Error(0)
}

func (m *mockRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) List(ctx context.Context, limit, offset int) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *mockRecipeRepo) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	args := m.Called(ctx, authorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecipeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) Create(ctx context.Context, t *domain.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTagRepo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *mockTagRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type mockIngredientRepo struct {
	mock.Mock
}

func (m *mockIngredientRepo) Create(ctx context.Context, i *domain.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *mockIngredientRepo) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *mockIngredientRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *mockIngredientRepo) List(ctx context.Context, name string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *mockIngredientRepo) ExistsByNameUnit(ctx context.Context, name, measurementUnit string) (bool, error) {
	args := m.Called(ctx, name, measurementUnit)
	return args.Bool(0), args.Error(1)
}

type mockFavoriteRepo struct {
	mock.Mock
}

func (m *mockFavoriteRepo) Add(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

type mockBasketRepo struct {
	mock.Mock
}

func (m *mockBasketRepo) Add(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockBasketRepo) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *mockBasketRepo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

type mockSubscribeRepo struct {
	mock.Mock
}

func (m *mockSubscribeRepo) Add(ctx context.Context, userID, followingID int64) error {
	args := m.Called(ctx, userID, followingID)
	return args.Error(0)
}

func (m *mockSubscribeRepo) Remove(ctx context.Context, userID, followingID int64) error {
	args := m.Called(ctx, userID, followingID)
	return args.Error(0)
}

func (m *mockSubscribeRepo) Exists(ctx context.Context, userID, followingID int64) (bool, error) {
	args := m.Called(ctx, userID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscribeRepo) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type serviceMocks struct {
	recipes     *mockRecipeRepo
	tags        *mockTagRepo
	ingredients *mockIngredientRepo
	favorites   *mockFavoriteRepo
	baskets     *mockBasketRepo
	subscribes  *mockSubscribeRepo
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		recipes:     new(mockRecipeRepo),
		tags:        new(mockTagRepo),
		ingredients: new(mockIngredientRepo),
		favorites:   new(mockFavoriteRepo),
		baskets:     new(mockBasketRepo),
		subscribes:  new(mockSubscribeRepo),
	}
	svc := NewService(m.recipes, m.tags, m.ingredients, m.favorites, m.baskets, m.subscribes, t.TempDir())
	return svc, m
}

func validRequest() WriteRecipeRequest {
	return WriteRecipeRequest{
		Ingredients: []IngredientAmountRequest{{ID: 1, Amount: 200}, {ID: 2, Amount: 2}},
		Tags:        []int64{1},
		Image:       "data:image/png;base64,aGVsbG8=",
		Name:        "Блины",
		Text:        "Смешать и жарить.",
		CookingTime: 30,
	}
}

func TestCreate_RejectsDuplicateIngredients(t *testing.T) {
	svc, m := newTestService(t)

	req := validRequest()
	req.Ingredients = []IngredientAmountRequest{{ID: 1, Amount: 2}, {ID: 1, Amount: 5}}

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrDuplicateIngredient)

	// Ни одной записи не должно дойти до хранилища.
	m.recipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_RejectsEmptyTags(t *testing.T) {
	svc, m := newTestService(t)

	req := validRequest()
	req.Tags = nil

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrNoTags)
	m.recipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_RejectsEmptyIngredients(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Ingredients = nil

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrNoIngredients)
}

func TestCreate_RejectsAmountBelowMinimum(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Ingredients = []IngredientAmountRequest{{ID: 1, Amount: 0}}

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreate_RejectsUnknownTag(t *testing.T) {
	svc, m := newTestService(t)

	req := validRequest()
	req.Tags = []int64{1, 42}

	// Каталог знает только тег 1.
	m.tags.On("GetByIDs", mock.Anything, []int64{1, 42}).Return([]domain.Tag{{ID: 1}}, nil)

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestCreate_RejectsCookingTimeOutOfRange(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.CookingTime = 301

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidCookingTime)
}

func TestUpdate_UnknownIngredientLeavesCompositionIntact(t *testing.T) {
	svc, m := newTestService(t)

	existing := &domain.Recipe{ID: 5, AuthorID: 1, Ingredients: []domain.IngredientRecipe{
		{RecipeID: 5, IngredientID: 1, Amount: 2},
		{RecipeID: 5, IngredientID: 2, Amount: 3},
	}}
	m.recipes.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	m.tags.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Tag{{ID: 1}}, nil)
	// Ингредиент 777 в каталоге отсутствует.
	m.ingredients.On("GetByIDs", mock.Anything, []int64{1, 777}).Return([]domain.Ingredient{{ID: 1}}, nil)

	req := validRequest()
	req.Ingredients = []IngredientAmountRequest{{ID: 1, Amount: 2}, {ID: 777, Amount: 3}}

	_, err := svc.Update(context.Background(), 1, 5, req)
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	// Состав не тронут: замена даже не начиналась.
	m.recipes.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_OnlyAuthorCanModify(t *testing.T) {
	svc, m := newTestService(t)

	m.recipes.On("GetByID", mock.Anything, int64(5)).Return(&domain.Recipe{ID: 5, AuthorID: 1}, nil)

	_, err := svc.Update(context.Background(), 2, 5, validRequest())
	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestCreate_Success(t *testing.T) {
	svc, m := newTestService(t)

	req := validRequest()
	m.tags.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Tag{{ID: 1, Name: "Завтрак"}}, nil)
	m.ingredients.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]domain.Ingredient{
		{ID: 1, Name: "мука", MeasurementUnit: "г"},
		{ID: 2, Name: "яйцо", MeasurementUnit: "шт"},
	}, nil)
	m.recipes.On("Create", mock.Anything, mock.Anything, []int64{1}, mock.Anything).Return(nil)
	m.recipes.On("GetByID", mock.Anything, int64(99)).Return(&domain.Recipe{
		ID:       99,
		Name:     req.Name,
		AuthorID: 1,
		Author:   &domain.User{ID: 1, Username: "author"},
		Tags:     []domain.Tag{{ID: 1, Name: "Завтрак"}},
		Ingredients: []domain.IngredientRecipe{
			{RecipeID: 99, IngredientID: 1, Amount: 200, Ingredient: &domain.Ingredient{ID: 1, Name: "мука", MeasurementUnit: "г"}},
			{RecipeID: 99, IngredientID: 2, Amount: 2, Ingredient: &domain.Ingredient{ID: 2, Name: "яйцо", MeasurementUnit: "шт"}},
		},
	}, nil)
	m.subscribes.On("Exists", mock.Anything, int64(1), int64(1)).Return(false, nil)
	m.favorites.On("Exists", mock.Anything, int64(1), int64(99)).Return(false, nil)
	m.baskets.On("Exists", mock.Anything, int64(1), int64(99)).Return(false, nil)

	resp, err := svc.Create(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ID)
	require.Len(t, resp.Ingredients, 2)
	assert.Equal(t, "мука", resp.Ingredients[0].Name)
	assert.Equal(t, 200, resp.Ingredients[0].Amount)
}

func TestAddToCart_DuplicateRejected(t *testing.T) {
	svc, m := newTestService(t)

	m.recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, Name: "Суп"}, nil)
	m.baskets.On("Exists", mock.Anything, int64(1), int64(3)).Return(true, nil)

	_, err := svc.AddToCart(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	m.baskets.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_UniqueViolationMapsToDuplicate(t *testing.T) {
	svc, m := newTestService(t)

	// Гонка: Exists ещё false, но вставка упирается в уникальный индекс.
	m.recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3}, nil)
	m.baskets.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)
	m.baskets.On("Add", mock.Anything, int64(1), int64(3)).Return(errUnique{})

	_, err := svc.AddToCart(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

type errUnique struct{}

func (errUnique) Error() string {
	return "UNIQUE constraint failed: baskets.user_id, baskets.recipe_id"
}

func TestAddFavorite_DuplicateRejected(t *testing.T) {
	svc, m := newTestService(t)

	m.recipes.On("GetByID", mock.Anything, int64(4)).Return(&domain.Recipe{ID: 4}, nil)
	m.favorites.On("Exists", mock.Anything, int64(1), int64(4)).Return(true, nil)

	_, err := svc.AddFavorite(context.Background(), 1, 4)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestAddFavorite_RecipeMissing(t *testing.T) {
	svc, m := newTestService(t)

	m.recipes.On("GetByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddFavorite(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRemoveFromCart_Missing(t *testing.T) {
	svc, m := newTestService(t)

	m.baskets.On("Remove", mock.Anything, int64(1), int64(9)).Return(gorm.ErrRecordNotFound)

	err := svc.RemoveFromCart(context.Background(), 1, 9)
	assert.ErrorIs(t, err, ErrNotInCart)
}
