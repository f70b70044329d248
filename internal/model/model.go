package model

import "time"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

// Account is one registered user. The password is stored exactly as entered;
// the admin screen reveals and exports it, so it must stay recoverable.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Session is the single currently-logged-in identity, if any.
type Session struct {
	Username string `json:"username"`
}

// Meeting is an optional scheduled get-together for a group. Date is
// "2006-01-02", Time is "15:04"; both are wall-clock local.
type Meeting struct {
	Date       string `json:"date"`
	Time       string `json:"time,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
	Link       string `json:"link,omitempty"`
}

type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Owner   string   `json:"owner"`
	Members []string `json:"members"`
	Meeting *Meeting `json:"meeting,omitempty"`
}

// TutorProfile is a tutoring card. At most one per owner account.
type TutorProfile struct {
	ID       string  `json:"id"`
	Owner    string  `json:"owner,omitempty"`
	Name     string  `json:"name"`
	Subjects string  `json:"subjects"`
	Rate     string  `json:"rate"`
	Rating   float64 `json:"rating"`
	Email    string  `json:"email"`
}

// Booking references the tutor by display name, not profile id.
type Booking struct {
	Tutor string    `json:"tutor"`
	Time  time.Time `json:"time"`
	User  string    `json:"user"`
}
