package entity

// Roles a user can register with.
const (
	RolePatient = "Patient"
	RoleDoctor  = "Doctor"
)

// User is the aggregate root for the account domain.
// Password is stored verbatim; see the open-question note in DESIGN.md.
type User struct {
	ID       int64
	Role     string
	Name     string
	Phone    string
	Email    string
	Password string
}
