package domain

import (
	"context"

	"shareit/internal/models"
)

// Repository объединяет доступ к хранилищу для всех доменных сервисов.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error)
	GetItemsByRequestID(ctx context.Context, requestID int64) ([]*models.Item, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.BookingDetails, error)
	UpdateBookingStatus(ctx context.Context, id int64, status models.Status) error
	GetBookerBookings(ctx context.Context, bookerID int64, state models.State, limit, offset int) ([]*models.BookingDetails, error)
	GetOwnerBookings(ctx context.Context, ownerID int64, state models.State, limit, offset int) ([]*models.BookingDetails, error)
	GetLastBooking(ctx context.Context, itemID int64) (*models.Booking, error)
	GetNextBooking(ctx context.Context, itemID int64) (*models.Booking, error)
	HasPastBooking(ctx context.Context, itemID, bookerID int64) (bool, error)

	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequestByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequestor(ctx context.Context, requestorID int64) ([]*models.ItemRequest, error)
	GetOtherRequests(ctx context.Context, requestorID int64, limit, offset int) ([]*models.ItemRequest, error)

	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
}
