package repository

import "github.com/stayhealthy/booking-api/internal/domain/entity"

// UserRepository defines the interface for account storage operations.
type UserRepository interface {
	// Create assigns a fresh id and stores the user. Fails if the email
	// is already registered.
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
