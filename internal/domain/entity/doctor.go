package entity

// AllSpecialties is the sentinel specialty filter that matches every doctor.
const AllSpecialties = "All Specialties"

// Doctor is a catalog entry. The catalog is seeded at startup and never
// mutated, so Doctor values can be shared freely.
type Doctor struct {
	ID         int64
	Name       string
	Specialty  string
	Experience string
	Rating     int
	Phone      string
	Avatar     string
}
