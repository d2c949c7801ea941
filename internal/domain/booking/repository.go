package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/jithiee/FyndPro-Backend/internal/models"
)

type Repository interface {
	// -------- Identity / profile lookups --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetEmployeeProfile(
		ctx context.Context,
		id uint,
	) (*models.EmployeeProfile, error)

	// ListEmployeesWithLocation returns employee users that have both
	// coordinates recorded, with their profiles preloaded.
	ListEmployeesWithLocation(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookID uuid.UUID,
	) (*models.Booking, error)

	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListByEmployee(
		ctx context.Context,
		employeeProfileID uint,
	) ([]models.Booking, error)

	// UpdateBookingStatus persists only status, amount, is_paid and
	// is_completed as a single write.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
	) error
}
