package datemath

const (
	// DateLayout is the note date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout is the note time format (HH:MM).
	ClockLayout = "15:04"
)
