package memory

import (
	"errors"
	"sync"

	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/internal/domain/repository"
)

var (
	errNotFound       = errors.New("not found")
	errDuplicateEmail = errors.New("email already registered")
)

// UserRepository keeps accounts in an id-keyed map with a secondary email
// index. Ids are a monotonic counter, never reused.
type UserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	users   map[int64]entity.User
	byEmail map[string]int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID:  1,
		users:   make(map[int64]entity.User),
		byEmail: make(map[string]int64),
	}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return errDuplicateEmail
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, errNotFound
	}
	u := r.users[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
