// Package models defines data structures used across the application.
// File: models/user.go
package models

// User is a stored account record. Email is the unique key within the users
// collection; the comparison is case-sensitive. Password holds a bcrypt hash,
// never the plain text.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Location is a latitude/longitude pair captured after login.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Session is the snapshot of the authenticated identity. One record exists
// per logged-in browsing context, keyed by the session ID issued at login;
// its presence is the sole authorization signal, there is no expiry. The
// administrator session never corresponds to a stored User.
type Session struct {
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IsAdmin  bool      `json:"isAdmin,omitempty"`
	Location *Location `json:"location,omitempty"`
}
