package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
	pkgvalidator "foodgram/internal/pkg/validator"
)

// Handler обрабатывает регистрацию, выдачу токенов и смену пароля.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes — регистрация и вход не требуют токена.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Register)
	rg.POST("/auth/token/login", h.Login)
}

// RegisterProtectedRoutes — выход и смена пароля требуют JWT.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token/logout", h.Logout)
	rg.POST("/users/set_password", h.SetPassword)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "Некорректное тело запроса.")
		return
	}
	if fields := pkgvalidator.Validate(req); fields != nil {
		response.FieldErrors(c, http.StatusBadRequest, fields)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "Некорректное тело запроса.")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AuthToken: token})
}

// Logout ничего не хранит на сервере: токены не отзываются,
// клиент просто забывает свой. Ответ совместим с djoser.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, "Некорректное тело запроса.")
		return
	}

	if err := h.service.SetPassword(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		response.FieldErrors(c, http.StatusBadRequest, map[string]string{
			"email": "Пользователь с таким email уже существует.",
		})
	case errors.Is(err, ErrUsernameTaken):
		response.FieldErrors(c, http.StatusBadRequest, map[string]string{
			"username": "Пользователь с таким именем уже существует.",
		})
	case errors.Is(err, ErrReservedUsername):
		response.FieldErrors(c, http.StatusBadRequest, map[string]string{
			"username": "Это имя пользователя зарезервировано.",
		})
	case errors.Is(err, ErrInvalidCredentials):
		response.Errors(c, http.StatusBadRequest, "Невозможно войти с предоставленными учетными данными.")
	case errors.Is(err, ErrWrongPassword):
		response.FieldErrors(c, http.StatusBadRequest, map[string]string{
			"current_password": "Неверный текущий пароль.",
		})
	case errors.Is(err, ErrUserNotFound):
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
	default:
		response.Errors(c, http.StatusInternalServerError, "Внутренняя ошибка сервера.")
	}
}
