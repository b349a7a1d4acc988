package api

import (
	"net/http"

	"shareit/internal/models"

	"github.com/gin-gonic/gin"
)

type itemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type commentInput struct {
	Text string `json:"text"`
}

func (s *Server) getItems(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	items, err := s.items.GetItems(c.Request.Context(), callerID(c), limit, offset)
	if err != nil {
		s.handleError(c, err)
		return
	}

	dtos := make([]ItemDto, 0, len(items))
	for _, details := range items {
		dtos = append(dtos, toItemDetailsDto(details))
	}
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) getItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := s.items.GetItem(c.Request.Context(), callerID(c), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemDetailsDto(details))
}

func (s *Server) createItem(c *gin.Context) {
	var input itemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	item := &models.Item{
		Name:        input.Name,
		Description: input.Description,
		RequestID:   input.RequestID,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	created, err := s.items.CreateItem(c.Request.Context(), callerID(c), item)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemDto(created))
}

func (s *Server) updateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input itemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	upd := models.ItemUpdate{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
	}
	item, err := s.items.UpdateItem(c.Request.Context(), callerID(c), id, upd)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemDto(item))
}

func (s *Server) searchItems(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	items, err := s.items.SearchItems(c.Request.Context(), callerID(c), c.Query("text"), limit, offset)
	if err != nil {
		s.handleError(c, err)
		return
	}

	dtos := make([]ItemDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDto(item))
	}
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) createComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	comment, err := s.items.CreateComment(c.Request.Context(), callerID(c), id, input.Text)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommentDto(*comment))
}
