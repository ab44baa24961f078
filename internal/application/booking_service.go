package application

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/stayhealthy/booking-api/internal/domain/entity"
	repo "github.com/stayhealthy/booking-api/internal/domain/repository"
	"github.com/stayhealthy/booking-api/pkg/validation"
)

// BookingService owns the mutable application state: the user registry, the
// single active session, appointments and reviews. The doctor catalog is
// read-only and shared. Every operation either completes or fails without
// partial effects; validation runs before any mutation.
type BookingService struct {
	Doctors      repo.DoctorRepository
	Users        repo.UserRepository
	Appointments repo.AppointmentRepository
	Reviews      repo.ReviewRepository
	Logger       *logrus.Logger

	mu      sync.RWMutex
	session *entity.User

	validate *validator.Validate
}

func NewBookingService(
	doctors repo.DoctorRepository,
	users repo.UserRepository,
	appointments repo.AppointmentRepository,
	reviews repo.ReviewRepository,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		Doctors:      doctors,
		Users:        users,
		Appointments: appointments,
		Reviews:      reviews,
		Logger:       logger,
		validate:     validation.New(),
	}
}

func (s *BookingService) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return &ValidationError{Fields: validation.ToDetails(err)}
	}
	return nil
}

// dateStamp matches the original client's toLocaleDateString output.
func dateStamp() string {
	return time.Now().Format("1/2/2006")
}

type RegisterInput struct {
	Role     string `json:"role" validate:"omitempty,oneof=Patient Doctor"`
	Name     string `json:"name" validate:"required,min=4"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates an account. The role defaults to Patient when omitted.
// Passwords are stored verbatim; see DESIGN.md.
func (s *BookingService) Register(in RegisterInput) (*entity.User, error) {
	if in.Role == "" {
		in.Role = entity.RolePatient
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	if existing, _ := s.Users.GetByEmail(in.Email); existing != nil {
		return nil, ErrDuplicateEmail
	}

	u := &entity.User{
		Role:     in.Role,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, ErrDuplicateEmail
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	return u, nil
}

// Login matches email and password exactly and replaces the active session.
// Logging in again simply swaps the session reference.
func (s *BookingService) Login(email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil || u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	s.session = u
	s.mu.Unlock()

	s.Logger.WithField("user_id", u.ID).Info("user logged in")
	return u, nil
}

// Logout clears the session. Calling it with no session is a no-op.
func (s *BookingService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

// CurrentUser returns the active session user, or nil.
func (s *BookingService) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

type BookInput struct {
	DoctorID    int64  `json:"doctor_id"`
	PatientName string `json:"patient_name" validate:"required,min=4"`
	Phone       string `json:"phone" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
}

// BookAppointment creates a confirmed appointment owned by the session user.
// Checks run in order: session, field validation, doctor resolution.
func (s *BookingService) BookAppointment(in BookInput) (*entity.Appointment, error) {
	user := s.CurrentUser()
	if user == nil {
		s.Logger.Debug("booking refused: no session")
		return nil, ErrNotAuthenticated
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	doc, err := s.Doctors.GetByID(in.DoctorID)
	if err != nil || doc == nil {
		return nil, ErrUnknownDoctor
	}

	appt := &entity.Appointment{
		DoctorID:    doc.ID,
		UserID:      user.ID,
		DoctorName:  doc.Name,
		Specialty:   doc.Specialty,
		PatientName: in.PatientName,
		Phone:       in.Phone,
		Date:        in.Date,
		Time:        in.Time,
		Status:      entity.StatusConfirmed,
	}
	if err := s.Appointments.Create(appt); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"appointment_id": appt.ID,
		"doctor_id":      appt.DoctorID,
		"user_id":        appt.UserID,
	}).Info("appointment booked")
	return appt, nil
}

// CancelAppointment hard-deletes by id. There is deliberately no ownership
// check; the original cancels any appointment by id (flagged in DESIGN.md).
func (s *BookingService) CancelAppointment(id int64) error {
	if err := s.Appointments.Delete(id); err != nil {
		return ErrAppointmentNotFound
	}
	s.Logger.WithField("appointment_id", id).Info("appointment cancelled")
	return nil
}

// ListAppointments returns a snapshot in creation order, scoped to forUser
// when given.
func (s *BookingService) ListAppointments(forUser *int64) []entity.Appointment {
	if forUser != nil {
		return s.Appointments.ListByUser(*forUser)
	}
	return s.Appointments.List()
}

type ReviewInput struct {
	DoctorID     int64  `json:"doctor_id"`
	ReviewerName string `json:"reviewer_name" validate:"required"`
	Text         string `json:"text" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
}

// SubmitReview records a review stamped with the current date. Same check
// order as booking: session, fields, doctor resolution.
func (s *BookingService) SubmitReview(in ReviewInput) (*entity.Review, error) {
	if s.CurrentUser() == nil {
		s.Logger.Debug("review refused: no session")
		return nil, ErrNotAuthenticated
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	doc, err := s.Doctors.GetByID(in.DoctorID)
	if err != nil || doc == nil {
		return nil, ErrUnknownDoctor
	}

	rv := &entity.Review{
		DoctorID:     doc.ID,
		DoctorName:   doc.Name,
		ReviewerName: in.ReviewerName,
		Text:         in.Text,
		Rating:       in.Rating,
		Date:         dateStamp(),
	}
	if err := s.Reviews.Create(rv); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"review_id": rv.ID, "doctor_id": rv.DoctorID}).Info("review submitted")
	return rv, nil
}

// ListReviews returns a snapshot in creation order, scoped to a doctor when
// doctorID is given.
func (s *BookingService) ListReviews(doctorID *int64) []entity.Review {
	if doctorID != nil {
		return s.Reviews.ListByDoctor(*doctorID)
	}
	return s.Reviews.List()
}

// SearchDoctors and the other catalog passthroughs keep handlers off the
// repositories.
func (s *BookingService) SearchDoctors(term, specialty string) []entity.Doctor {
	return s.Doctors.Search(term, specialty)
}

func (s *BookingService) Doctor(id int64) (*entity.Doctor, error) {
	doc, err := s.Doctors.GetByID(id)
	if err != nil || doc == nil {
		return nil, ErrUnknownDoctor
	}
	return doc, nil
}

func (s *BookingService) Specialties() []string {
	return s.Doctors.Specialties()
}

// ProfileView is the account page snapshot: the session user plus the same
// counters the original profile page shows.
type ProfileView struct {
	User             *entity.User
	AppointmentCount int
	ReviewCount      int
}

func (s *BookingService) Profile() (*ProfileView, error) {
	user := s.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return &ProfileView{
		User:             user,
		AppointmentCount: len(s.Appointments.ListByUser(user.ID)),
		ReviewCount:      len(s.Reviews.List()),
	}, nil
}
