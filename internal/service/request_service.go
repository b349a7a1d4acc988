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

type RequestService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewRequestService(repo domain.Repository, logger *zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

func (s *RequestService) CreateRequest(ctx context.Context, userID int64, description string) (*models.ItemRequest, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     time.Now(),
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("request_id", request.ID).Int64("requestor_id", userID).Msg("item request created")
	return request, nil
}

// GetOwnRequests возвращает запросы пользователя от новых к старым,
// каждый — с вещами, созданными по нему.
func (s *RequestService) GetOwnRequests(ctx context.Context, userID int64) ([]*models.RequestDetails, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestsByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, requests)
}

// GetAllRequests возвращает чужие запросы постранично, от новых к старым.
func (s *RequestService) GetAllRequests(ctx context.Context, userID int64, limit, offset int) ([]*models.RequestDetails, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.GetOtherRequests(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.decorateAll(ctx, requests)
}

func (s *RequestService) GetRequest(ctx context.Context, userID, requestID int64) (*models.RequestDetails, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.repo.GetRequestByID(ctx, requestID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, notFound("Запрос с ID %d не найден", requestID)
	}
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, request)
}

func (s *RequestService) decorateAll(ctx context.Context, requests []*models.ItemRequest) ([]*models.RequestDetails, error) {
	details := make([]*models.RequestDetails, 0, len(requests))
	for _, request := range requests {
		d, err := s.decorate(ctx, request)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *RequestService) decorate(ctx context.Context, request *models.ItemRequest) (*models.RequestDetails, error) {
	items, err := s.repo.GetItemsByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	d := &models.RequestDetails{ItemRequest: *request, Items: make([]models.Item, 0, len(items))}
	for _, item := range items {
		d.Items = append(d.Items, *item)
	}
	return d, nil
}

func (s *RequestService) checkUser(ctx context.Context, userID int64) error {
	_, err := s.repo.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return notFound("Пользователь с ID %d не найден", userID)
	}
	return err
}
