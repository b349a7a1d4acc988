package api

import (
	"time"

	"shareit/internal/models"
)

type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommentDto struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// BookingDtoShort — краткая форма бронирования для карточки вещи.
type BookingDtoShort struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemDto struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	RequestID   *int64           `json:"requestId,omitempty"`
	LastBooking *BookingDtoShort `json:"lastBooking,omitempty"`
	NextBooking *BookingDtoShort `json:"nextBooking,omitempty"`
	Comments    []CommentDto     `json:"comments"`
}

type BookingDto struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Item   ItemDto   `json:"item"`
	Booker UserDto   `json:"booker"`
	Status string    `json:"status"`
}

type ItemRequestDto struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDto `json:"items"`
}

func toUserDto(user *models.User) UserDto {
	return UserDto{ID: user.ID, Name: user.Name, Email: user.Email}
}

func toCommentDto(comment models.Comment) CommentDto {
	return CommentDto{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: comment.AuthorName,
		Created:    comment.Created,
	}
}

func toBookingDtoShort(booking *models.Booking) *BookingDtoShort {
	if booking == nil {
		return nil
	}
	return &BookingDtoShort{
		ID:       booking.ID,
		BookerID: booking.BookerID,
		Start:    booking.Start,
		End:      booking.End,
	}
}

func toItemDto(item *models.Item) ItemDto {
	return ItemDto{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		// Список комментариев в ответе всегда присутствует, хотя бы пустой
		Comments:    []CommentDto{},
	}
}

func toItemDetailsDto(details *models.ItemDetails) ItemDto {
	dto := toItemDto(&details.Item)
	dto.LastBooking = toBookingDtoShort(details.LastBooking)
	dto.NextBooking = toBookingDtoShort(details.NextBooking)
	dto.Comments = make([]CommentDto, 0, len(details.Comments))
	for _, comment := range details.Comments {
		dto.Comments = append(dto.Comments, toCommentDto(comment))
	}
	return dto
}

func toBookingDto(details *models.BookingDetails) BookingDto {
	return BookingDto{
		ID:     details.ID,
		Start:  details.Start,
		End:    details.End,
		Item:   toItemDto(&details.Item),
		Booker: toUserDto(&details.Booker),
		Status: string(details.Status),
	}
}

func toBookingDtos(list []*models.BookingDetails) []BookingDto {
	dtos := make([]BookingDto, 0, len(list))
	for _, details := range list {
		dtos = append(dtos, toBookingDto(details))
	}
	return dtos
}

func toItemRequestDto(details *models.RequestDetails) ItemRequestDto {
	items := make([]ItemDto, 0, len(details.Items))
	for i := range details.Items {
		items = append(items, toItemDto(&details.Items[i]))
	}
	return ItemRequestDto{
		ID:          details.ID,
		Description: details.Description,
		Created:     details.Created,
		Items:       items,
	}
}

func toItemRequestDtos(list []*models.RequestDetails) []ItemRequestDto {
	dtos := make([]ItemRequestDto, 0, len(list))
	for _, details := range list {
		dtos = append(dtos, toItemRequestDto(details))
	}
	return dtos
}
