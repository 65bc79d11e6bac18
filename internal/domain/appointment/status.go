package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked         Status = "booked"
	StatusArrived        Status = "arrived"
	StatusInConsultation Status = "in_consultation"
	StatusCompleted      Status = "completed"
	StatusNoShow         Status = "no_show"
)

func InitialStatus() Status {
	return StatusBooked
}

// Active statuses occupy their slot for conflict purposes.
func (s Status) Active() bool {
	switch s {
	case StatusBooked, StatusArrived, StatusInConsultation:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusNoShow
}

func (s Status) Valid() bool {
	switch s {
	case StatusBooked, StatusArrived, StatusInConsultation, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// CanTransition encodes the lifecycle
// booked → arrived → in_consultation → completed, with no_show reachable
// from booked or arrived. Terminal states accept nothing.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusBooked:
		return to == StatusArrived || to == StatusNoShow
	case StatusArrived:
		return to == StatusInConsultation || to == StatusNoShow
	case StatusInConsultation:
		return to == StatusCompleted
	}
	return false
}
