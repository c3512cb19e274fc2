package recipes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

// Handler обрабатывает HTTP-запросы рецептов.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes — чтение доступно без авторизации
// (флаги пользователя заполняются, если токен всё же передан).
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.List)
	rg.GET("/recipes/:id", h.Get)
}

// RegisterProtectedRoutes — запись, избранное и корзина требуют JWT.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes", h.Create)
	rg.PUT("/recipes/:id", h.Update)
	rg.PATCH("/recipes/:id", h.Update)
	rg.DELETE("/recipes/:id", h.Delete)

	rg.POST("/recipes/:id/favorite", h.AddFavorite)
	rg.DELETE("/recipes/:id/favorite", h.RemoveFavorite)
	rg.POST("/recipes/:id/shopping_cart", h.AddToCart)
	rg.DELETE("/recipes/:id/shopping_cart", h.RemoveFromCart)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	results, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить список рецептов.")
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req WriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "Некорректное тело запроса.")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req WriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "Некорректное тело запроса.")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	brief, err := h.service.AddFavorite(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brief)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AddToCart(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	brief, err := h.service.AddToCart(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brief)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFromCart(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
		return 0, false
	}
	return id, true
}

// writeError переводит ошибки сервиса в HTTP-ответы исходного API.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
	case errors.Is(err, ErrNotAuthor):
		response.Detail(c, http.StatusForbidden, "У вас недостаточно прав для выполнения данного действия.")
	case errors.Is(err, ErrNoTags):
		response.Errors(c, http.StatusBadRequest, "Нужно указать хотя бы один тег.")
	case errors.Is(err, ErrNoIngredients):
		response.Errors(c, http.StatusBadRequest, "Нужно указать хотя бы один ингредиент.")
	case errors.Is(err, ErrDuplicateTag):
		response.Errors(c, http.StatusBadRequest, "Теги не должны повторяться.")
	case errors.Is(err, ErrDuplicateIngredient):
		response.Errors(c, http.StatusBadRequest, "Ингредиенты не должны повторяться.")
	case errors.Is(err, ErrInvalidAmount):
		response.Errors(c, http.StatusBadRequest, "Количество ингредиента должно быть не меньше 1.")
	case errors.Is(err, ErrInvalidCookingTime):
		response.Errors(c, http.StatusBadRequest, "Время приготовления должно быть от 1 до 300 минут.")
	case errors.Is(err, ErrInvalidImage):
		response.Errors(c, http.StatusBadRequest, "Некорректное изображение.")
	case errors.Is(err, ErrTagNotFound):
		response.Errors(c, http.StatusBadRequest, "Указан несуществующий тег.")
	case errors.Is(err, ErrIngredientNotFound):
		response.Errors(c, http.StatusBadRequest, "Указан несуществующий ингредиент.")
	case errors.Is(err, ErrAlreadyFavorited):
		response.Errors(c, http.StatusBadRequest, "Рецепт был ранее добавлен.")
	case errors.Is(err, ErrAlreadyInCart):
		response.Errors(c, http.StatusBadRequest, "Рецепт был ранее добавлен в корзину.")
	case errors.Is(err, ErrNotFavorited):
		response.Detail(c, http.StatusNotFound, "Рецепта нет в избранном.")
	case errors.Is(err, ErrNotInCart):
		response.Detail(c, http.StatusNotFound, "Рецепта нет в корзине.")
	default:
		response.Errors(c, http.StatusInternalServerError, "Внутренняя ошибка сервера.")
	}
}
