package domain

import "time"

// User is the minimal identity the core needs: an alert recipient.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
