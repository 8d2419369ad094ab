package common

import "time"

// UserResult is the public projection of a user. The password hash never
// leaves the domain layer.
type UserResult struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
