package repository

import "github.com/stayhealthy/booking-api/internal/domain/entity"

// DoctorRepository is the read-only doctor catalog.
type DoctorRepository interface {
	// All returns every doctor in the catalog's fixed order.
	All() []entity.Doctor
	GetByID(id int64) (*entity.Doctor, error)
	// Specialties returns the fixed specialty list, led by the
	// entity.AllSpecialties sentinel.
	Specialties() []string
	// Search filters by case-insensitive substring match on name or
	// specialty, and by exact specialty unless the sentinel is given.
	// An empty term matches everything. Catalog order is preserved.
	Search(term, specialty string) []entity.Doctor
}
