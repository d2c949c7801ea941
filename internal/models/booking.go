package models

import (
	"time"

	"github.com/google/uuid"
)

// A client books an employee (professional). Rows are kept forever for
// history and complaints; there is no delete path.
type Booking struct {
	BookID uuid.UUID `gorm:"type:uuid;primaryKey" json:"book_id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	EmployeeID uint            `gorm:"not null;index" json:"employee_id"`
	Employee   EmployeeProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee"`

	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	Job         string    `gorm:"size:100" json:"job"`

	// Amount and IsPaid are written only by the completed transition.
	Amount      *float64 `gorm:"type:decimal(10,2)" json:"amount"`
	IsPaid      bool     `gorm:"default:false" json:"is_paid"`
	Status      string   `gorm:"size:20;default:'pending'" json:"status"`
	IsCompleted bool     `gorm:"default:false" json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
}
