package tags

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"
)

// Handler отдаёт каталог тегов. Каталог только для чтения,
// поэтому сервисного слоя здесь нет.
type Handler struct {
	repo repository.TagRepository
}

func NewHandler(repo repository.TagRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tags", h.List)
	rg.GET("/tags/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	tags, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить список тегов.")
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Страница не найдена.")
		return
	}

	tag, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "Страница не найдена.")
			return
		}
		response.Errors(c, http.StatusInternalServerError, "Не удалось получить тег.")
		return
	}

	c.JSON(http.StatusOK, tag)
}
