package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jithiee/FyndPro-Backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Identity / profile
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("EmployeeProfile").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetEmployeeProfile(
	ctx context.Context,
	id uint,
) (*models.EmployeeProfile, error) {

	var profile models.EmployeeProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *BookingGormRepository) ListEmployeesWithLocation(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("EmployeeProfile").
		Where(
			"role = ? AND latitude IS NOT NULL AND longitude IS NOT NULL",
			models.RoleEmployee,
		).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// Client and Employee are loaded rows; never write through them.
	return r.db.WithContext(ctx).
		Omit("Client", "Employee").
		Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Employee.User").
		Where("book_id = ?", bookID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "client_id = ?", clientID)
}

func (r *BookingGormRepository) ListByEmployee(
	ctx context.Context,
	employeeProfileID uint,
) ([]models.Booking, error) {
	return r.listBookings(ctx, "employee_id = ?", employeeProfileID)
}

func (r *BookingGormRepository) listBookings(
	ctx context.Context,
	cond string,
	arg any,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Employee.User").
		Where(cond, arg).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus writes the transition fields and nothing else, as
// one atomic row update.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("book_id = ?", b.BookID).
		Select("status", "amount", "is_paid", "is_completed").
		Updates(map[string]any{
			"status":       b.Status,
			"amount":       b.Amount,
			"is_paid":      b.IsPaid,
			"is_completed": b.IsCompleted,
		}).Error
}
