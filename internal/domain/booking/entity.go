package booking

import (
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves a booking to target, applying the completion side
// effects when the target is Completed. Only status, amount, is_paid and
// is_completed are ever touched; everything else on the record stays as is.
func Transition(b *models.Booking, target Status, workingHours *float64) error {
	if err := CanTransition(Status(b.Status), target); err != nil {
		return err
	}

	if target == StatusCompleted {
		if workingHours == nil {
			return httperr.ErrBusiness("missing_working_hours")
		}

		amount := b.Employee.HourlyRate * *workingHours
		b.Amount = &amount
		b.IsPaid = true
		b.IsCompleted = true
	}

	b.Status = string(target)
	return nil
}
