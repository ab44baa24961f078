package application_test

import (
	"io"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/internal/infrastructure/memory"
)

func newService(t *testing.T) *application.BookingService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return application.NewBookingService(
		memory.NewDoctorRepository(memory.SeedDoctors()),
		memory.NewUserRepository(),
		memory.NewAppointmentRepository(),
		memory.NewReviewRepository(),
		logger,
	)
}

func aliceInput() application.RegisterInput {
	return application.RegisterInput{
		Role:     entity.RolePatient,
		Name:     "Alice Smith",
		Phone:    "5551112222",
		Email:    "alice@x.com",
		Password: "password1",
	}
}

func loginAlice(t *testing.T, svc *application.BookingService) *entity.User {
	t.Helper()
	_, err := svc.Register(aliceInput())
	require.NoError(t, err)
	u, err := svc.Login("alice@x.com", "password1")
	require.NoError(t, err)
	return u
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(t)

	u, err := svc.Register(aliceInput())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, entity.RolePatient, u.Role)

	got, err := svc.Login("alice@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Alice Smith", got.Name)

	_, err = svc.Login("alice@x.com", "wrong")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestRegisterRoleDefaultsToPatient(t *testing.T) {
	svc := newService(t)

	in := aliceInput()
	in.Role = ""
	u, err := svc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RolePatient, u.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(t)

	in := aliceInput()
	in.Password = "short1"
	_, err := svc.Register(in)
	require.Error(t, err)

	ve := application.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "password")

	// No user was created.
	_, err = svc.Login("alice@x.com", "short1")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestRegisterValidationFields(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register(application.RegisterInput{
		Name:     "Al",
		Phone:    "",
		Email:    "not-an-email",
		Password: "password1",
	})
	require.Error(t, err)

	ve := application.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "email")
	assert.NotContains(t, ve.Fields, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register(aliceInput())
	require.NoError(t, err)

	dup := aliceInput()
	dup.Name = "Alice Clone"
	dup.Password = "different1"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, application.ErrDuplicateEmail)

	// The original account is untouched; the duplicate's password never
	// became valid.
	_, err = svc.Login("alice@x.com", "password1")
	assert.NoError(t, err)
	_, err = svc.Login("alice@x.com", "different1")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLoginReplacesSession(t *testing.T) {
	svc := newService(t)

	alice := loginAlice(t, svc)

	bob := aliceInput()
	bob.Name = "Bob Jones"
	bob.Email = "bob@x.com"
	_, err := svc.Register(bob)
	require.NoError(t, err)

	u, err := svc.Login("bob@x.com", "password1")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, u.ID)
	assert.Equal(t, u.ID, svc.CurrentUser().ID)
}

func TestLogoutIdempotent(t *testing.T) {
	svc := newService(t)

	loginAlice(t, svc)
	require.NotNil(t, svc.CurrentUser())

	svc.Logout()
	assert.Nil(t, svc.CurrentUser())
	svc.Logout()
	assert.Nil(t, svc.CurrentUser())
}

func validBooking() application.BookInput {
	return application.BookInput{
		DoctorID:    1,
		PatientName: "Alice Smith",
		Phone:       "5551112222",
		Date:        "2024-05-01",
		Time:        "9:00 AM",
	}
}

func TestBookAppointment(t *testing.T) {
	svc := newService(t)
	alice := loginAlice(t, svc)

	appt, err := svc.BookAppointment(validBooking())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, appt.Status)
	assert.Equal(t, alice.ID, appt.UserID)
	assert.Equal(t, int64(1), appt.DoctorID)
	assert.Equal(t, "Dr. Denis Raj", appt.DoctorName)
	assert.Equal(t, "Dentist", appt.Specialty)

	assert.Len(t, svc.ListAppointments(&alice.ID), 1)
}

func TestBookAppointmentRequiresSession(t *testing.T) {
	svc := newService(t)

	_, err := svc.BookAppointment(validBooking())
	assert.ErrorIs(t, err, application.ErrNotAuthenticated)
	assert.Empty(t, svc.ListAppointments(nil))
}

func TestBookAppointmentValidation(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	in := validBooking()
	in.PatientName = "Al"
	in.Time = ""
	_, err := svc.BookAppointment(in)
	require.Error(t, err)

	ve := application.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "patient_name")
	assert.Contains(t, ve.Fields, "time")
	assert.Empty(t, svc.ListAppointments(nil))
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	in := validBooking()
	in.DoctorID = 999
	_, err := svc.BookAppointment(in)
	assert.ErrorIs(t, err, application.ErrUnknownDoctor)
	assert.Empty(t, svc.ListAppointments(nil))
}

func TestCancelAppointmentRoundTrip(t *testing.T) {
	svc := newService(t)
	alice := loginAlice(t, svc)

	appt, err := svc.BookAppointment(validBooking())
	require.NoError(t, err)

	require.NoError(t, svc.CancelAppointment(appt.ID))
	assert.Empty(t, svc.ListAppointments(&alice.ID))

	assert.ErrorIs(t, svc.CancelAppointment(appt.ID), application.ErrAppointmentNotFound)
}

func TestAppointmentIDsNotReused(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	first, err := svc.BookAppointment(validBooking())
	require.NoError(t, err)
	require.NoError(t, svc.CancelAppointment(first.ID))

	second, err := svc.BookAppointment(validBooking())
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestListAppointmentsScopedToUser(t *testing.T) {
	svc := newService(t)
	alice := loginAlice(t, svc)
	_, err := svc.BookAppointment(validBooking())
	require.NoError(t, err)

	bob := aliceInput()
	bob.Name = "Bob Jones"
	bob.Email = "bob@x.com"
	bobUser, err := svc.Register(bob)
	require.NoError(t, err)
	_, err = svc.Login("bob@x.com", "password1")
	require.NoError(t, err)

	in := validBooking()
	in.DoctorID = 2
	_, err = svc.BookAppointment(in)
	require.NoError(t, err)

	assert.Len(t, svc.ListAppointments(nil), 2)
	assert.Len(t, svc.ListAppointments(&alice.ID), 1)
	assert.Len(t, svc.ListAppointments(&bobUser.ID), 1)
	assert.Equal(t, int64(2), svc.ListAppointments(&bobUser.ID)[0].DoctorID)
}

func TestSubmitReview(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	rv, err := svc.SubmitReview(application.ReviewInput{
		DoctorID:     3,
		ReviewerName: "Alice Smith",
		Text:         "Great experience!",
		Rating:       5,
	})
	require.NoError(t, err)
	assert.NotZero(t, rv.ID)
	assert.Equal(t, "Dr. Jane Smith", rv.DoctorName)
	assert.Regexp(t, regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), rv.Date)

	id := int64(3)
	assert.Len(t, svc.ListReviews(&id), 1)
	other := int64(4)
	assert.Empty(t, svc.ListReviews(&other))
}

func TestSubmitReviewRequiresSession(t *testing.T) {
	svc := newService(t)

	_, err := svc.SubmitReview(application.ReviewInput{
		DoctorID:     1,
		ReviewerName: "Bob",
		Text:         "Great!",
		Rating:       5,
	})
	assert.ErrorIs(t, err, application.ErrNotAuthenticated)
	assert.Empty(t, svc.ListReviews(nil))
}

func TestSubmitReviewUnknownDoctor(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	_, err := svc.SubmitReview(application.ReviewInput{
		DoctorID:     999,
		ReviewerName: "Bob",
		Text:         "Great!",
		Rating:       5,
	})
	assert.ErrorIs(t, err, application.ErrUnknownDoctor)
	assert.Empty(t, svc.ListReviews(nil))
}

func TestSubmitReviewValidation(t *testing.T) {
	svc := newService(t)
	loginAlice(t, svc)

	_, err := svc.SubmitReview(application.ReviewInput{
		DoctorID:     1,
		ReviewerName: "",
		Text:         "",
		Rating:       6,
	})
	require.Error(t, err)

	ve := application.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "reviewer_name")
	assert.Contains(t, ve.Fields, "text")
	assert.Contains(t, ve.Fields, "rating")
	assert.Empty(t, svc.ListReviews(nil))
}

func TestProfile(t *testing.T) {
	svc := newService(t)

	_, err := svc.Profile()
	assert.ErrorIs(t, err, application.ErrNotAuthenticated)

	alice := loginAlice(t, svc)
	_, err = svc.BookAppointment(validBooking())
	require.NoError(t, err)
	_, err = svc.SubmitReview(application.ReviewInput{
		DoctorID:     1,
		ReviewerName: "Alice Smith",
		Text:         "Great!",
		Rating:       5,
	})
	require.NoError(t, err)

	p, err := svc.Profile()
	require.NoError(t, err)
	assert.Equal(t, alice.ID, p.User.ID)
	assert.Equal(t, 1, p.AppointmentCount)
	assert.Equal(t, 1, p.ReviewCount)
}

func TestDoctorCatalogPassthrough(t *testing.T) {
	svc := newService(t)

	d, err := svc.Doctor(1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Denis Raj", d.Name)

	_, err = svc.Doctor(999)
	assert.ErrorIs(t, err, application.ErrUnknownDoctor)

	specs := svc.Specialties()
	require.NotEmpty(t, specs)
	assert.Equal(t, entity.AllSpecialties, specs[0])
}
