package memory

import (
	"sort"
	"sync"

	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/internal/domain/repository"
)

// AppointmentRepository keeps appointments in an id-keyed map. Ids are
// monotonic, so listing by ascending id reproduces creation order even after
// deletions.
type AppointmentRepository struct {
	mu           sync.RWMutex
	nextID       int64
	appointments map[int64]entity.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		nextID:       1,
		appointments: make(map[int64]entity.Appointment),
	}
}

func (r *AppointmentRepository) Create(a *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.appointments[a.ID] = *a
	return nil
}

func (r *AppointmentRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return errNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *AppointmentRepository) List() []entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(entity.Appointment) bool { return true })
}

func (r *AppointmentRepository) ListByUser(userID int64) []entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(a entity.Appointment) bool { return a.UserID == userID })
}

// snapshot collects matching appointments in ascending id order. Callers
// must hold at least the read lock.
func (r *AppointmentRepository) snapshot(keep func(entity.Appointment) bool) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)
