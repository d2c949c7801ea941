package booking

import (
	"context"

	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/dto"
	"github.com/jithiee/FyndPro-Backend/internal/models"
)

type ListClientBookings struct {
	repo domain.Repository
}

func NewListClientBookings(
	repo domain.Repository,
) *ListClientBookings {
	return &ListClientBookings{
		repo: repo,
	}
}

func (uc *ListClientBookings) Execute(
	ctx context.Context,
	requester *models.User,
) ([]dto.BookingDetailDTO, error) {

	bookings, err := uc.repo.ListByClient(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	return toDetailList(bookings), nil
}

type ListEmployeeBookings struct {
	repo domain.Repository
}

func NewListEmployeeBookings(
	repo domain.Repository,
) *ListEmployeeBookings {
	return &ListEmployeeBookings{
		repo: repo,
	}
}

// Execute returns the bookings assigned to the requester's profile.
// Non-employees get an empty list, not an error.
func (uc *ListEmployeeBookings) Execute(
	ctx context.Context,
	requester *models.User,
) ([]dto.BookingDetailDTO, error) {

	if requester.Role != models.RoleEmployee || requester.EmployeeProfile == nil {
		return []dto.BookingDetailDTO{}, nil
	}

	bookings, err := uc.repo.ListByEmployee(ctx, requester.EmployeeProfile.ID)
	if err != nil {
		return nil, err
	}

	return toDetailList(bookings), nil
}

func toDetailList(bookings []models.Booking) []dto.BookingDetailDTO {
	out := make([]dto.BookingDetailDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.NewBookingDetail(&bookings[i]))
	}
	return out
}
