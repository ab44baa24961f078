package entity

// Review is immutable once submitted. Date is the local date stamp taken at
// creation time.
type Review struct {
	ID           int64
	DoctorID     int64
	DoctorName   string
	ReviewerName string
	Text         string
	Rating       int
	Date         string
}
