package api

import (
	"errors"
	"net/http"
	"strconv"

	"shareit/internal/service"

	"github.com/gin-gonic/gin"
)

// handleError переводит доменные ошибки в HTTP-статусы.
// Тело всегда имеет форму {"error": "<сообщение>"}.
func (s *Server) handleError(c *gin.Context, err error) {
	var notFoundErr *service.NotFoundError
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	default:
		s.logger.Error().Err(err).
			Str("request_id", c.GetString("requestID")).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// pathID разбирает числовой идентификатор из пути.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Некорректный идентификатор в пути запроса")
		return 0, false
	}
	return id, true
}

// pageParams разбирает параметры постраничной выдачи from/size.
func pageParams(c *gin.Context) (limit, offset int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		badRequest(c, "Параметр from должен быть неотрицательным числом")
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		badRequest(c, "Параметр size должен быть положительным числом")
		return 0, 0, false
	}
	return size, from, true
}
