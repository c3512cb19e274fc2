package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

// Handler обрабатывает HTTP-запросы профилей и подписок.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes — просмотр профилей доступен без авторизации.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
}

// RegisterProtectedRoutes — свой профиль и подписки требуют JWT.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.GET("/users/subscriptions", h.Subscriptions)
	rg.POST("/users/:id/subscribe", h.Subscribe)
	rg.DELETE("/users/:id/subscribe", h.Unsubscribe)
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

	resp, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить список пользователей.")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := userID(c)
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

// Me возвращает профиль текущего пользователя.
func (h *Handler) Me(c *gin.Context) {
	id := c.GetInt64("user_id")

	resp, err := h.service.Get(c.Request.Context(), id, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Subscriptions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if recipesLimit < 0 {
		recipesLimit = 0
	}

	resp, err := h.service.Subscriptions(c.Request.Context(), c.GetInt64("user_id"), recipesLimit, limit, offset)
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить подписки.")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Subscribe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))
	if recipesLimit < 0 {
		recipesLimit = 0
	}

	resp, err := h.service.Subscribe(c.Request.Context(), c.GetInt64("user_id"), id, recipesLimit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
	case errors.Is(err, ErrSelfSubscribe):
		response.Errors(c, http.StatusBadRequest, "Нельзя подписаться на самого себя.")
	case errors.Is(err, ErrAlreadySubscribed):
		response.Errors(c, http.StatusBadRequest, "Вы уже подписаны на этого автора.")
	case errors.Is(err, ErrNotSubscribed):
		response.Errors(c, http.StatusBadRequest, "Вы не были подписаны на этого автора.")
	default:
		response.Errors(c, http.StatusInternalServerError, "Внутренняя ошибка сервера.")
	}
}
