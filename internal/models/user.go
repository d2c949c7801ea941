package models

import "time"

type Role string

const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:15" json:"phone"`
	Role         Role   `gorm:"size:20;default:'client';index" json:"role"`

	// Decimal degrees, 6 places. Nil until the user records a location.
	Latitude  *float64 `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude *float64 `gorm:"type:decimal(9,6)" json:"longitude"`
	Location  string   `gorm:"size:255" json:"location"`

	EmployeeProfile *EmployeeProfile `gorm:"foreignKey:UserID" json:"employee_profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates are recorded.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}
