package booking

import "github.com/jithiee/FyndPro-Backend/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCanceled    Status = "canceled"
	StatusIncompleted Status = "incompleted"
)

// transitions is the allowed status graph. Completed, Canceled and
// Incompleted are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCanceled},
	StatusConfirmed:  {StatusInProgress, StatusCanceled},
	StatusInProgress: {StatusCompleted, StatusIncompleted, StatusCanceled},
}

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates a status value coming in over the wire.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCanceled, StatusIncompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// CanTransition checks the target against the status graph.
func CanTransition(current, target Status) error {
	for _, allowed := range transitions[current] {
		if allowed == target {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
