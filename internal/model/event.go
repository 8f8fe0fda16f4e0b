package model

// Event is a timed entry on a calendar day.
type Event struct {
	ID    string `json:"id"`    // opaque, unique across the store
	Date  string `json:"date"`  // YYYY-MM-DD
	Time  string `json:"time"`  // HH:MM, zero padded so it sorts as a string
	Title string `json:"title"` // trimmed, never empty
}
