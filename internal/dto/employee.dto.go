package dto

import "github.com/jithiee/FyndPro-Backend/internal/models"

type NearbyEmployeeDTO struct {
	ID         uint                    `json:"id"`
	FullName   string                  `json:"full_name"`
	Email      string                  `json:"email"`
	Location   string                  `json:"location"`
	Latitude   *float64                `json:"latitude"`
	Longitude  *float64                `json:"longitude"`
	DistanceKm float64                 `json:"distance_km"`
	Profile    *models.EmployeeProfile `json:"employee_profile"`
}

type UserWithProfileDTO struct {
	ID        uint                    `json:"id"`
	Email     string                  `json:"email"`
	FullName  string                  `json:"full_name"`
	Role      models.Role             `json:"role"`
	Phone     string                  `json:"phone"`
	Location  string                  `json:"location"`
	Latitude  *float64                `json:"latitude"`
	Longitude *float64                `json:"longitude"`
	Profile   *models.EmployeeProfile `json:"employee_profile"`
}

func NewUserWithProfile(u *models.User) UserWithProfileDTO {
	return UserWithProfileDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Phone:     u.Phone,
		Location:  u.Location,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		Profile:   u.EmployeeProfile,
	}
}
