package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/jithiee/FyndPro-Backend/internal/audit"
	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	Status       string
	WorkingHours *float64
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	requester *models.User,
	bookID uuid.UUID,
	in UpdateStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !domain.CanUpdateStatus(requester, b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(b, target, in.WorkingHours); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.BookID.String(),
		Metadata: map[string]string{"status": b.Status},
	})

	return b, nil
}
