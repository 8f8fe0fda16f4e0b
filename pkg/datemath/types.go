package datemath

// Layouts for the wire formats used across the service.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04"
)
