package entity

// Session is the meal slot a food is suggested for.
type Session string

const (
	SessionMorning   Session = "Morning"
	SessionAfternoon Session = "Afternoon"
	SessionEvening   Session = "Evening"
	SessionSnack     Session = "Snack"
)

// String returns the string representation of the Session.
func (s Session) String() string {
	return string(s)
}

// IsValid checks if the Session is one of the known meal slots.
func (s Session) IsValid() bool {
	switch s {
	case SessionMorning, SessionAfternoon, SessionEvening, SessionSnack:
		return true
	default:
		return false
	}
}

// Sessions lists the meal slots in the order they occur during a day.
func Sessions() []Session {
	return []Session{SessionMorning, SessionAfternoon, SessionEvening, SessionSnack}
}
