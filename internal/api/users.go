package api

import (
	"net/http"

	"shareit/internal/models"

	"github.com/gin-gonic/gin"
)

type userInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) getAllUsers(c *gin.Context) {
	users, err := s.users.GetAllUsers(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	dtos := make([]UserDto, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, toUserDto(user))
	}
	c.JSON(http.StatusOK, dtos)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := s.users.GetUser(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserDto(user))
}

func (s *Server) createUser(c *gin.Context) {
	var input userInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	user, err := s.users.CreateUser(c.Request.Context(), &models.User{Name: input.Name, Email: input.Email})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserDto(user))
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input userInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	user, err := s.users.UpdateUser(c.Request.Context(), id, models.UserUpdate{Name: input.Name, Email: input.Email})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserDto(user))
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.users.DeleteUser(c.Request.Context(), id); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
