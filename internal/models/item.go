package models

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	RequestID   *int64    `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemUpdate описывает частичное обновление вещи владельцем.
// Строковые поля применяются только если непустые, Available — если задано.
type ItemUpdate struct {
	Name        string
	Description string
	Available   *bool
}

// ItemDetails — вещь вместе с данными для выдачи владельцу:
// последнее и ближайшее бронирования и комментарии.
type ItemDetails struct {
	Item
	LastBooking *Booking  `json:"last_booking,omitempty"`
	NextBooking *Booking  `json:"next_booking,omitempty"`
	Comments    []Comment `json:"comments"`
}
