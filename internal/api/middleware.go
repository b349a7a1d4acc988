package api

import (
	"net/http"
	"strconv"
	"time"

	"shareit/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderUserID — заголовок с идентификатором вызывающего пользователя.
// Значение не проверяется по учетным данным: сервис доверяет шлюзу.
const HeaderUserID = "X-Sharer-User-Id"

const headerRequestID = "X-Request-Id"

const contextUserID = "userID"

// identity requires the caller id header and puts it into the context.
func identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Отсутствует заголовок " + HeaderUserID})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Некорректный заголовок " + HeaderUserID})
			return
		}
		c.Set(contextUserID, id)
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64(contextUserID)
}

// requestID присваивает каждому запросу идентификатор, если клиент
// не передал свой.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Set("requestID", id)
		c.Next()
	}
}

func accessLog(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("request_id", c.GetString("requestID")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	}
}

func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
