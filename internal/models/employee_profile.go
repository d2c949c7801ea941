package models

import "gorm.io/datatypes"

// Professional attributes, 1:1 with a user whose role is employee.
type EmployeeProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title      string  `gorm:"size:100" json:"title"`
	Experience int     `json:"experience"`
	HourlyRate float64 `gorm:"type:decimal(10,2);default:0" json:"hourly_rate"`
	Available  bool    `gorm:"default:true" json:"available"`

	Bio    string         `gorm:"type:text" json:"bio"`
	Skills datatypes.JSON `json:"skills"`
}
