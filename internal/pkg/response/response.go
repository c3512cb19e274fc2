package response

import "github.com/gin-gonic/gin"

// Формат тел ошибок совместим с исходным API:
// валидационные и дубль-действия отвечают {"errors": ...},
// информационные ответы — {"detail": ...}.

func Errors(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"errors": message})
}

func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

// FieldErrors отдаёт ошибки валидации по полям: {"field": "message"}.
func FieldErrors(c *gin.Context, statusCode int, fields map[string]string) {
	c.JSON(statusCode, fields)
}
