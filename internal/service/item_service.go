package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewItemService(repo domain.Repository, logger *zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// GetItems возвращает вещи владельца, каждая с последним и ближайшим
// бронированием и комментариями.
func (s *ItemService) GetItems(ctx context.Context, userID int64, limit, offset int) ([]*models.ItemDetails, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.repo.GetItemsByOwner(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	details := make([]*models.ItemDetails, 0, len(items))
	for _, item := range items {
		d, err := s.decorate(ctx, item, true)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// GetItem возвращает вещь с комментариями; данные о бронированиях
// добавляются только для владельца.
func (s *ItemService) GetItem(ctx context.Context, userID, itemID int64) (*models.ItemDetails, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, item, item.OwnerID == userID)
}

func (s *ItemService) CreateItem(ctx context.Context, userID int64, item *models.Item) (*models.Item, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	if item.RequestID != nil {
		if _, err := s.repo.GetRequestByID(ctx, *item.RequestID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, notFound("Запрос с ID %d не найден", *item.RequestID)
			}
			return nil, err
		}
	}

	item.OwnerID = userID
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", userID).Msg("item created")
	return item, nil
}

// UpdateItem позволяет владельцу частично обновить вещь. Для чужого
// пользователя возвращается NotFound, а не Forbidden.
func (s *ItemService) UpdateItem(ctx context.Context, userID, itemID int64, upd models.ItemUpdate) (*models.Item, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, notFound("Редактировать вещь может только её владелец")
	}

	if strings.TrimSpace(upd.Name) != "" {
		item.Name = upd.Name
	}
	if strings.TrimSpace(upd.Description) != "" {
		item.Description = upd.Description
	}
	if upd.Available != nil {
		item.Available = *upd.Available
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SearchItems ищет доступные вещи по тексту. Пустой запрос сразу
// возвращает пустой список, не обращаясь к хранилищу.
func (s *ItemService) SearchItems(ctx context.Context, userID int64, text string, limit, offset int) ([]*models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.SearchItems(ctx, text, limit, offset)
}

// CreateComment сохраняет отзыв о вещи. Комментировать может только
// пользователь, уже завершивший её аренду.
func (s *ItemService) CreateComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Пользователь с ID %d не найден", userID)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	rented, err := s.repo.HasPastBooking(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, validation("Комментировать вещь можно только после завершения её аренды")
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: user.Name,
		Created:    time.Now(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ItemService) decorate(ctx context.Context, item *models.Item, withBookings bool) (*models.ItemDetails, error) {
	comments, err := s.repo.GetCommentsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	details := &models.ItemDetails{Item: *item, Comments: comments}
	if !withBookings {
		return details, nil
	}

	if details.LastBooking, err = s.repo.GetLastBooking(ctx, item.ID); err != nil {
		return nil, err
	}
	if details.NextBooking, err = s.repo.GetNextBooking(ctx, item.ID); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *ItemService) findItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Вещь с ID %d не найдена", itemID)
	}
	return item, err
}

func (s *ItemService) checkUser(ctx context.Context, userID int64) error {
	_, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return notFound("Пользователь с ID %d не найден", userID)
	}
	return err
}
