package memory

import (
	"strings"

	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/internal/domain/repository"
)

// specialties is the fixed filter list offered to clients. The sentinel
// comes first and is not a real specialty.
var specialties = []string{
	entity.AllSpecialties,
	"Dentist",
	"Gynecologist/obstetrician",
	"General Physician",
	"Dermatologist",
	"Ear-nose-throat (ent) Specialist",
	"Homeopath",
	"Cardiology",
}

// DoctorRepository serves the seeded catalog. It holds no locks because the
// catalog is immutable after construction.
type DoctorRepository struct {
	doctors []entity.Doctor
	byID    map[int64]*entity.Doctor
}

func NewDoctorRepository(seed []entity.Doctor) *DoctorRepository {
	r := &DoctorRepository{
		doctors: make([]entity.Doctor, len(seed)),
		byID:    make(map[int64]*entity.Doctor, len(seed)),
	}
	copy(r.doctors, seed)
	for i := range r.doctors {
		r.byID[r.doctors[i].ID] = &r.doctors[i]
	}
	return r
}

func (r *DoctorRepository) All() []entity.Doctor {
	out := make([]entity.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out
}

func (r *DoctorRepository) GetByID(id int64) (*entity.Doctor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *DoctorRepository) Specialties() []string {
	out := make([]string, len(specialties))
	copy(out, specialties)
	return out
}

func (r *DoctorRepository) Search(term, specialty string) []entity.Doctor {
	term = strings.ToLower(term)
	out := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialty), term) {
			continue
		}
		if specialty != "" && specialty != entity.AllSpecialties && d.Specialty != specialty {
			continue
		}
		out = append(out, d)
	}
	return out
}

var _ repository.DoctorRepository = (*DoctorRepository)(nil)
