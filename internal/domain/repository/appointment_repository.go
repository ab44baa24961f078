package repository

import "github.com/stayhealthy/booking-api/internal/domain/entity"

// AppointmentRepository stores booked appointments. Listings are snapshots
// in creation order.
type AppointmentRepository interface {
	// Create assigns a fresh id and stores the appointment. Ids are never
	// reused, even after Delete.
	Create(a *entity.Appointment) error
	// Delete removes the appointment, failing if the id is unknown.
	Delete(id int64) error
	List() []entity.Appointment
	ListByUser(userID int64) []entity.Appointment
}
