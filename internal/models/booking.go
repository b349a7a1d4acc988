package models

import "time"

// Status — статус жизненного цикла бронирования.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// State — фильтр списка бронирований.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState возвращает известное значение фильтра или false.
func ParseState(raw string) (State, bool) {
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(raw), true
	}
	return "", false
}

type Booking struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	BookerID  int64     `json:"booker_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingDetails — бронирование вместе с вещью и арендатором.
// Читается одним JOIN-запросом, чтобы не ходить в базу три раза.
type BookingDetails struct {
	Booking
	Item   Item `json:"item"`
	Booker User `json:"booker"`
}
