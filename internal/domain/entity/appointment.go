package entity

// StatusConfirmed is the only appointment status issued at creation.
const StatusConfirmed = "confirmed"

// Appointment references its doctor and owner by id. DoctorName and
// Specialty are resolved from the catalog when the appointment is created so
// listings do not need a second lookup.
type Appointment struct {
	ID          int64
	DoctorID    int64
	UserID      int64
	DoctorName  string
	Specialty   string
	PatientName string
	Phone       string
	Date        string
	Time        string
	Status      string
}
