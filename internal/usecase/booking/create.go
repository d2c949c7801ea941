package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jithiee/FyndPro-Backend/internal/audit"
	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/models"
	"github.com/jithiee/FyndPro-Backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	EmployeeID  uint
	BookingDate time.Time
	Job         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	client *models.User,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !domain.CanCreateBooking(client) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	profile, err := uc.repo.GetEmployeeProfile(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_employee")
	}

	// Date window: same-day allowed, at most 7 days ahead. Only the
	// date component counts, the time of day does not.
	now := timezone.NowIn(uc.tz)
	today := dateOnly(now)
	bookingDay := dateOnly(in.BookingDate.In(now.Location()))

	if bookingDay.Before(today) || bookingDay.After(today.AddDate(0, 0, 7)) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	b := &models.Booking{
		BookID:      uuid.New(),
		ClientID:    client.ID,
		Client:      *client,
		EmployeeID:  profile.ID,
		Employee:    *profile,
		BookingDate: in.BookingDate,
		Job:         in.Job,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &client.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.BookID.String(),
	})

	return b, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
