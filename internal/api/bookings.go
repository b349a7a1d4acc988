package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type bookingInput struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (s *Server) createBooking(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Некорректное тело запроса")
		return
	}

	details, err := s.bookings.CreateBooking(c.Request.Context(), callerID(c), input.ItemID, input.Start, input.End)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingDto(details))
}

func (s *Server) approveBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		badRequest(c, "Параметр approved должен быть true или false")
		return
	}

	details, err := s.bookings.ApproveBooking(c.Request.Context(), callerID(c), id, approved)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingDto(details))
}

func (s *Server) getBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := s.bookings.GetBooking(c.Request.Context(), callerID(c), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingDto(details))
}

func (s *Server) getBookerBookings(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	list, err := s.bookings.GetBookerBookings(c.Request.Context(), callerID(c), c.DefaultQuery("state", "ALL"), limit, offset)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingDtos(list))
}

func (s *Server) getOwnerBookings(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	list, err := s.bookings.GetOwnerBookings(c.Request.Context(), callerID(c), c.DefaultQuery("state", "ALL"), limit, offset)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingDtos(list))
}
