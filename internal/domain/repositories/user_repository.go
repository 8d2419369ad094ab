package repositories

import (
	"task-service/internal/domain/entities"
)

// UserRepository is the credential store. Create must surface
// apperr.ErrDuplicateEmail when the unique index on email rejects the insert,
// so a race between two registrations is resolved by the store.
type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Delete(id uint) error
}
