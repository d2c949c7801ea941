package booking

import "github.com/jithiee/FyndPro-Backend/internal/models"

// ===============================
// Access Policy
// ===============================

// Pure predicates consulted before every mutating operation.

// CanCreateBooking: only clients book professionals.
func CanCreateBooking(identity *models.User) bool {
	return identity.Role == models.RoleClient
}

// CanUpdateStatus: only the employee assigned to the booking may move it.
// The booking must carry its Employee association.
func CanUpdateStatus(identity *models.User, b *models.Booking) bool {
	return identity.Role == models.RoleEmployee && b.Employee.UserID == identity.ID
}
