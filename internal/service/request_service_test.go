package service

import (
	"context"
	"testing"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestServiceCreateRequest(t *testing.T) {
	ctx := context.Background()
	requestor := &models.User{ID: 2, Name: "Проситель", Email: "requestor@example.com"}

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, requestor.ID).Return(requestor, nil).Once()
		repo.On("CreateRequest", ctx, mock.MatchedBy(func(r *models.ItemRequest) bool {
			return r.Description == "Нужна дрель" && r.RequestorID == requestor.ID && !r.Created.IsZero()
		})).Return(nil).Once()

		request, err := svc.CreateRequest(ctx, requestor.ID, "Нужна дрель")
		require.NoError(t, err)
		assert.Equal(t, "Нужна дрель", request.Description)
		repo.AssertExpectations(t)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, int64(99)).Return(nil, database.ErrNotFound).Once()

		_, err := svc.CreateRequest(ctx, 99, "Нужна дрель")
		var notFoundErr *NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestRequestServiceGetRequests(t *testing.T) {
	ctx := context.Background()
	requestor := &models.User{ID: 2, Name: "Проситель", Email: "requestor@example.com"}
	request := &models.ItemRequest{ID: 55, Description: "Нужна дрель", RequestorID: requestor.ID}
	requestID := request.ID
	answer := &models.Item{ID: 10, Name: "Дрель", Available: true, OwnerID: 1, RequestID: &requestID}

	t.Run("OwnWithItems", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, requestor.ID).Return(requestor, nil).Once()
		repo.On("GetRequestsByRequestor", ctx, requestor.ID).Return([]*models.ItemRequest{request}, nil).Once()
		repo.On("GetItemsByRequestID", ctx, request.ID).Return([]*models.Item{answer}, nil).Once()

		details, err := svc.GetOwnRequests(ctx, requestor.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)
		require.Len(t, details[0].Items, 1)
		assert.Equal(t, answer.ID, details[0].Items[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("AllPaged", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, int64(3)).Return(&models.User{ID: 3}, nil).Once()
		repo.On("GetOtherRequests", ctx, int64(3), 5, 10).Return([]*models.ItemRequest{request}, nil).Once()
		repo.On("GetItemsByRequestID", ctx, request.ID).Return(nil, nil).Once()

		details, err := svc.GetAllRequests(ctx, 3, 5, 10)
		require.NoError(t, err)
		require.Len(t, details, 1)
		// Без ответов список вещей пустой, не nil
		assert.NotNil(t, details[0].Items)
		assert.Empty(t, details[0].Items)
	})

	t.Run("ByID", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, requestor.ID).Return(requestor, nil).Once()
		repo.On("GetRequestByID", ctx, request.ID).Return(request, nil).Once()
		repo.On("GetItemsByRequestID", ctx, request.ID).Return([]*models.Item{answer}, nil).Once()

		details, err := svc.GetRequest(ctx, requestor.ID, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.Description, details.Description)
		assert.Len(t, details.Items, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewRequestService(repo, testLogger())

		repo.On("GetUserByID", ctx, requestor.ID).Return(requestor, nil).Once()
		repo.On("GetRequestByID", ctx, int64(99)).Return(nil, database.ErrNotFound).Once()

		_, err := svc.GetRequest(ctx, requestor.ID, 99)
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "Запрос с ID 99 не найден", notFoundErr.Message)
	})
}
