package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate описывает частичное обновление пользователя.
// Пустое поле означает "не менять".
type UserUpdate struct {
	Name  string
	Email string
}
