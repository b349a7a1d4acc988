package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type requestInput struct {
	Description string `json:"description"`
}

func (s *Server) createRequest(c *gin.Context) {
	var input requestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	request, err := s.requests.CreateRequest(c.Request.Context(), callerID(c), input.Description)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ItemRequestDto{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       []ItemDto{},
	})
}

func (s *Server) getOwnRequests(c *gin.Context) {
	list, err := s.requests.GetOwnRequests(c.Request.Context(), callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemRequestDtos(list))
}

func (s *Server) getAllRequests(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	list, err := s.requests.GetAllRequests(c.Request.Context(), callerID(c), limit, offset)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemRequestDtos(list))
}

func (s *Server) getRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := s.requests.GetRequest(c.Request.Context(), callerID(c), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemRequestDto(details))
}
