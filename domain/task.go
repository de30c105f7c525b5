package domain

import "time"

// Task represents a dated agenda entry owned by a single user. Date and Time
// are kept as opaque strings; Date is used as an exact-match filter key.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Time      string    `json:"time"`
	Date      string    `json:"date"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"created_at"`
}
