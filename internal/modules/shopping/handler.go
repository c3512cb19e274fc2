package shopping

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

// Handler отдаёт список покупок как текстовый файл.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes регистрирует маршрут скачивания; группа должна быть
// закрыта JWT middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)
}

// DownloadShoppingCart собирает список покупок текущего пользователя
// и возвращает его вложением shopping_cart.txt. Пустая корзина — это
// валидный ответ из одного заголовка.
func (h *Handler) DownloadShoppingCart(c *gin.Context) {
	userID := c.GetInt64("user_id")

	items, err := h.service.BuildShoppingList(c.Request.Context(), userID)
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось сформировать список покупок.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
	c.Data(http.StatusOK, "text/plain", []byte(Render(items)))
}
