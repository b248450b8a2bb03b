package models

// GuestName is the display name used when a review submission carries none.
const GuestName = "Guest"

// User is upserted on every review submission: insert if the id is new,
// otherwise the name is overwritten. Email and password hash are only set
// for registered users; guests never have them.
type User struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}
