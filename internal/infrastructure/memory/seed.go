package memory

import "github.com/stayhealthy/booking-api/internal/domain/entity"

// SeedDoctors returns the doctors the catalog is populated with at startup.
func SeedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Dr. Denis Raj", Specialty: "Dentist", Experience: "24 years experience overall", Rating: 5, Phone: "4478278192", Avatar: "👨‍⚕️"},
		{ID: 2, Name: "Dr. John Doe", Specialty: "Cardiology", Experience: "15 years experience overall", Rating: 4, Phone: "1234567890", Avatar: "👨‍⚕️"},
		{ID: 3, Name: "Dr. Jane Smith", Specialty: "Dermatologist", Experience: "10 years experience overall", Rating: 5, Phone: "0987654321", Avatar: "👩‍⚕️"},
		{ID: 4, Name: "Dr. Sarah Wilson", Specialty: "Gynecologist/obstetrician", Experience: "18 years experience overall", Rating: 5, Phone: "5551234567", Avatar: "👩‍⚕️"},
		{ID: 5, Name: "Dr. Michael Brown", Specialty: "General Physician", Experience: "12 years experience overall", Rating: 4, Phone: "5559876543", Avatar: "👨‍⚕️"},
		{ID: 6, Name: "Dr. Emily Davis", Specialty: "Ear-nose-throat (ent) Specialist", Experience: "14 years experience overall", Rating: 5, Phone: "5556781234", Avatar: "👩‍⚕️"},
		{ID: 7, Name: "Dr. Robert Johnson", Specialty: "Homeopath", Experience: "20 years experience overall", Rating: 4, Phone: "5554321987", Avatar: "👨‍⚕️"},
	}
}
