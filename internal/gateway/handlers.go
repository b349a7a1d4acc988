package gateway

import (
	"net/http"
	"strconv"
	"time"

	"shareit/internal/api"

	"github.com/gin-gonic/gin"
)

// Входные формы с декларативной проверкой. Шлюз отсекает явно
// некорректные запросы, сервер доверяет прошедшим.

type createUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type updateUserInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type createItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type updateItemInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type createBookingInput struct {
	ItemID int64      `json:"itemId" binding:"required"`
	Start  *time.Time `json:"start" binding:"required"`
	End    *time.Time `json:"end" binding:"required"`
}

type createCommentInput struct {
	Text string `json:"text" binding:"required"`
}

type createRequestInput struct {
	Description string `json:"description" binding:"required"`
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// identity требует заголовок пользователя до пересылки.
func identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(api.HeaderUserID)
		if raw == "" {
			badRequest(c, "Отсутствует заголовок "+api.HeaderUserID)
			return
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 {
			badRequest(c, "Некорректный заголовок "+api.HeaderUserID)
			return
		}
		c.Next()
	}
}

// checkPage проверяет параметры from/size, не подставляя значений:
// значения по умолчанию назначает сервер.
func checkPage(c *gin.Context) bool {
	if raw := c.Query("from"); raw != "" {
		if from, err := strconv.Atoi(raw); err != nil || from < 0 {
			badRequest(c, "Параметр from должен быть неотрицательным числом")
			return false
		}
	}
	if raw := c.Query("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err != nil || size <= 0 {
			badRequest(c, "Параметр size должен быть положительным числом")
			return false
		}
	}
	return true
}

func checkPathID(c *gin.Context) bool {
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil || id <= 0 {
		badRequest(c, "Некорректный идентификатор в пути запроса")
		return false
	}
	return true
}

func (g *Gateway) pagedProxy(c *gin.Context) {
	if !checkPage(c) {
		return
	}
	g.proxy(c)
}

func (g *Gateway) pathIDProxy(c *gin.Context) {
	if !checkPathID(c) {
		return
	}
	g.proxy(c)
}

func (g *Gateway) createUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Необходимо указать имя и корректный email")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) updateUser(c *gin.Context) {
	if !checkPathID(c) {
		return
	}
	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) createItem(c *gin.Context) {
	var input createItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Необходимо указать имя, описание и доступность вещи")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) updateItem(c *gin.Context) {
	if !checkPathID(c) {
		return
	}
	var input updateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) createBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Необходимо указать вещь, дату начала и дату окончания аренды")
		return
	}

	now := time.Now()
	if input.Start.Before(now.Add(-time.Minute)) {
		badRequest(c, "Дата начала аренды не может быть в прошлом")
		return
	}
	if !input.End.After(now) {
		badRequest(c, "Дата окончания аренды должна быть в будущем")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) approveBooking(c *gin.Context) {
	if !checkPathID(c) {
		return
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		badRequest(c, "Параметр approved должен быть true или false")
		return
	}
	g.proxy(c)
}

func (g *Gateway) createComment(c *gin.Context) {
	if !checkPathID(c) {
		return
	}
	var input createCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Текст комментария не может быть пустым")
		return
	}
	g.forwardJSON(c, input)
}

func (g *Gateway) createRequest(c *gin.Context) {
	var input createRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Описание запроса не может быть пустым")
		return
	}
	g.forwardJSON(c, input)
}

// searchItems требует наличия параметра text; пустое значение допустимо,
// сервер вернет на него пустой список.
func (g *Gateway) searchItems(c *gin.Context) {
	if _, ok := c.GetQuery("text"); !ok {
		badRequest(c, "Параметр text обязателен")
		return
	}
	if !checkPage(c) {
		return
	}
	g.proxy(c)
}
