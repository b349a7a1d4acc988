package models

import "time"

type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}

// RequestDetails — запрос вместе с вещами, созданными по нему.
type RequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}
