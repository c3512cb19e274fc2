package ingredients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
)

// Handler отдаёт каталог ингредиентов. Каталог наполняется импортом
// (cmd/loadcsv), через API доступен только на чтение.
type Handler struct {
	repo repository.IngredientRepository
}

func NewHandler(repo repository.IngredientRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", h.List)
	rg.GET("/ingredients/:id", h.Get)
}

// List возвращает каталог; ?name= фильтрует по префиксу названия.
func (h *Handler) List(c *gin.Context) {
	ingredients, err := h.repo.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить список ингредиентов.")
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
		return
	}

	ingredient, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "Страница не найдена.")
			return
		}
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить ингредиент.")
		return
	}

	c.JSON(http.StatusOK, ingredient)
}
