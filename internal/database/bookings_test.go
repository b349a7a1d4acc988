package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBooking(t *testing.T, db *DB, itemID, bookerID int64, start, end time.Time, status models.Status) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   status,
	}
	require.NoError(t, db.CreateBooking(context.Background(), booking))
	return booking
}

func TestBookingCRUD(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Владелец", "owner@example.com")
	booker := createTestUser(t, db, "Арендатор", "booker@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	start := time.Now().Add(24 * time.Hour)
	booking := createTestBooking(t, db, item.ID, booker.ID, start, start.Add(48*time.Hour), models.StatusWaiting)

	found, err := db.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, found.Status)
	// JOIN подтягивает вещь и арендатора
	assert.Equal(t, item.ID, found.Item.ID)
	assert.Equal(t, "Дрель", found.Item.Name)
	assert.Equal(t, booker.ID, found.Booker.ID)
	assert.Equal(t, "booker@example.com", found.Booker.Email)

	err = db.UpdateBookingStatus(ctx, booking.ID, models.StatusApproved)
	require.NoError(t, err)

	found, err = db.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, found.Status)

	_, err = db.GetBooking(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingsByState(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Владелец", "owner@example.com")
	booker := createTestUser(t, db, "Арендатор", "booker@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	now := time.Now()
	past := createTestBooking(t, db, item.ID, booker.ID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), models.StatusApproved)
	current := createTestBooking(t, db, item.ID, booker.ID, now.Add(-24*time.Hour), now.Add(24*time.Hour), models.StatusApproved)
	future := createTestBooking(t, db, item.ID, booker.ID, now.Add(48*time.Hour), now.Add(72*time.Hour), models.StatusWaiting)
	rejected := createTestBooking(t, db, item.ID, booker.ID, now.Add(96*time.Hour), now.Add(120*time.Hour), models.StatusRejected)

	// ALL: все бронирования от новых к старым по дате начала
	bookings, err := db.GetBookerBookings(ctx, booker.ID, models.StateAll, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 4)
	assert.Equal(t, rejected.ID, bookings[0].ID)
	assert.Equal(t, future.ID, bookings[1].ID)
	assert.Equal(t, current.ID, bookings[2].ID)
	assert.Equal(t, past.ID, bookings[3].ID)

	// CURRENT
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateCurrent, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, current.ID, bookings[0].ID)

	// PAST
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StatePast, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, past.ID, bookings[0].ID)

	// FUTURE
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateFuture, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, rejected.ID, bookings[0].ID)
	assert.Equal(t, future.ID, bookings[1].ID)

	// WAITING
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateWaiting, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, future.ID, bookings[0].ID)

	// REJECTED
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateRejected, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, rejected.ID, bookings[0].ID)

	// Пагинация
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateAll, 2, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, future.ID, bookings[0].ID)
	assert.Equal(t, current.ID, bookings[1].ID)
}

func TestOwnerBookings(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Владелец", "owner@example.com")
	other := createTestUser(t, db, "Сосед", "other@example.com")
	booker := createTestUser(t, db, "Арендатор", "booker@example.com")

	ownerItem := createTestItem(t, db, owner.ID, "Дрель", true)
	otherItem := createTestItem(t, db, other.ID, "Пила", true)

	now := time.Now()
	ownBooking := createTestBooking(t, db, ownerItem.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusWaiting)
	createTestBooking(t, db, otherItem.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusWaiting)

	// Владелец видит только бронирования своих вещей
	bookings, err := db.GetOwnerBookings(ctx, owner.ID, models.StateAll, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, ownBooking.ID, bookings[0].ID)

	// У арендатора два бронирования разных вещей
	bookings, err = db.GetBookerBookings(ctx, booker.ID, models.StateAll, 10, 0)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestLastAndNextBooking(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Владелец", "owner@example.com")
	booker := createTestUser(t, db, "Арендатор", "booker@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	// Без бронирований — nil без ошибки
	last, err := db.GetLastBooking(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, last)
	next, err := db.GetNextBooking(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, next)

	now := time.Now()
	createTestBooking(t, db, item.ID, booker.ID, now.Add(-96*time.Hour), now.Add(-72*time.Hour), models.StatusApproved)
	recent := createTestBooking(t, db, item.ID, booker.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), models.StatusRejected)
	createTestBooking(t, db, item.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusWaiting)
	approved := createTestBooking(t, db, item.ID, booker.ID, now.Add(72*time.Hour), now.Add(96*time.Hour), models.StatusApproved)

	// Последнее — с самым поздним началом в прошлом, статус не важен
	last, err = db.GetLastBooking(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, recent.ID, last.ID)

	// Ближайшее будущее — только подтвержденное
	next, err = db.GetNextBooking(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, approved.ID, next.ID)
}

func TestHasPastBooking(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	owner := createTestUser(t, db, "Владелец", "owner@example.com")
	booker := createTestUser(t, db, "Арендатор", "booker@example.com")
	stranger := createTestUser(t, db, "Прохожий", "stranger@example.com")
	item := createTestItem(t, db, owner.ID, "Дрель", true)

	now := time.Now()
	// Будущее бронирование не считается
	createTestBooking(t, db, item.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusApproved)

	has, err := db.HasPastBooking(ctx, item.ID, booker.ID)
	require.NoError(t, err)
	assert.False(t, has)

	createTestBooking(t, db, item.ID, booker.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), models.StatusApproved)

	has, err = db.HasPastBooking(ctx, item.ID, booker.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Для другого пользователя прошлых аренд нет
	has, err = db.HasPastBooking(ctx, item.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, has)
}
