package service

import (
	"context"
	"errors"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type BookingService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewBookingService(repo domain.Repository, logger *zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// CreateBooking создает бронирование в статусе WAITING.
// Владелец не может бронировать собственную вещь: для него она "не найдена".
func (s *BookingService) CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (*models.BookingDetails, error) {
	booker, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Пользователь с ID %d не найден", userID)
	}
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Вещь с ID %d не найдена", itemID)
	}
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, validation("Вещь с ID %d недоступна для аренды", item.ID)
	}
	if !start.Before(end) {
		return nil, validation("Время бронирования указано некорректно")
	}
	if item.OwnerID == userID {
		return nil, notFound("Вещь недоступна для бронирования владельцем")
	}

	booking := &models.Booking{
		ItemID:   itemID,
		BookerID: userID,
		Start:    start,
		End:      end,
		Status:   models.StatusWaiting,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", itemID).
		Int64("booker_id", userID).
		Msg("booking created")

	return &models.BookingDetails{Booking: *booking, Item: *item, Booker: *booker}, nil
}

// ApproveBooking — единственный разрешенный переход статуса:
// WAITING -> APPROVED либо WAITING -> REJECTED, решает владелец вещи.
func (s *BookingService) ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (*models.BookingDetails, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != userID {
		return nil, notFound("Изменять статус бронирования может только владелец вещи")
	}
	if booking.Status == models.StatusApproved {
		return nil, validation("Бронирование с ID %d уже подтверждено", bookingID)
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.logger.Info().
		Int64("booking_id", bookingID).
		Str("status", string(status)).
		Msg("booking decided")

	return booking, nil
}

// GetBooking доступен арендатору и владельцу вещи; остальные получают
// NotFound, чтобы не раскрывать существование бронирования.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*models.BookingDetails, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && booking.Item.OwnerID != userID {
		return nil, notFound("Информация о бронировании с ID %d недоступна для просмотра", bookingID)
	}
	return booking, nil
}

func (s *BookingService) GetBookerBookings(ctx context.Context, userID int64, state string, limit, offset int) ([]*models.BookingDetails, error) {
	stateValue, err := s.checkListArgs(ctx, userID, state)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBookerBookings(ctx, userID, stateValue, limit, offset)
}

func (s *BookingService) GetOwnerBookings(ctx context.Context, userID int64, state string, limit, offset int) ([]*models.BookingDetails, error) {
	stateValue, err := s.checkListArgs(ctx, userID, state)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOwnerBookings(ctx, userID, stateValue, limit, offset)
}

func (s *BookingService) checkListArgs(ctx context.Context, userID int64, state string) (models.State, error) {
	_, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return "", notFound("Пользователь с ID %d не найден", userID)
	}
	if err != nil {
		return "", err
	}

	stateValue, ok := models.ParseState(state)
	if !ok {
		return "", validation("Unknown state: %s", state)
	}
	return stateValue, nil
}

func (s *BookingService) findBooking(ctx context.Context, bookingID int64) (*models.BookingDetails, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Бронирование с ID %d не найдено", bookingID)
	}
	return booking, err
}
