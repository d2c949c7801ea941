package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jithiee/FyndPro-Backend/internal/models"
)

type BookingDetailDTO struct {
	BookID      uuid.UUID `json:"book_id"`
	BookingDate time.Time `json:"booking_date"`
	Job         string    `json:"job"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`

	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	Status      string    `json:"status"`
	IsCompleted bool      `json:"is_completed"`
	IsPaid      bool      `json:"is_paid"`
	Amount      *float64  `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBookingDetail(b *models.Booking) BookingDetailDTO {
	return BookingDetailDTO{
		BookID:       b.BookID,
		BookingDate:  b.BookingDate,
		Job:          b.Job,
		ClientID:     b.ClientID,
		ClientName:   b.Client.FullName,
		EmployeeID:   b.EmployeeID,
		EmployeeName: b.Employee.User.FullName,
		Status:       b.Status,
		IsCompleted:  b.IsCompleted,
		IsPaid:       b.IsPaid,
		Amount:       b.Amount,
		CreatedAt:    b.CreatedAt,
	}
}
