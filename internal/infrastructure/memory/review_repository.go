package memory

import (
	"sort"
	"sync"

	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/internal/domain/repository"
)

// ReviewRepository keeps reviews in an id-keyed map with a monotonic id
// counter. Reviews are append-only.
type ReviewRepository struct {
	mu      sync.RWMutex
	nextID  int64
	reviews map[int64]entity.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		nextID:  1,
		reviews: make(map[int64]entity.Review),
	}
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv.ID = r.nextID
	r.nextID++
	r.reviews[rv.ID] = *rv
	return nil
}

func (r *ReviewRepository) List() []entity.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(entity.Review) bool { return true })
}

func (r *ReviewRepository) ListByDoctor(doctorID int64) []entity.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(rv entity.Review) bool { return rv.DoctorID == doctorID })
}

func (r *ReviewRepository) snapshot(keep func(entity.Review) bool) []entity.Review {
	out := make([]entity.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		if keep(rv) {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
