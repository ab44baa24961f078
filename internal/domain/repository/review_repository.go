package repository

import "github.com/stayhealthy/booking-api/internal/domain/entity"

// ReviewRepository stores submitted reviews. Reviews are never edited or
// deleted; listings are snapshots in creation order.
type ReviewRepository interface {
	Create(r *entity.Review) error
	List() []entity.Review
	ListByDoctor(doctorID int64) []entity.Review
}
