package domain

import "time"

// User is the minimal borrower profile cached in the session after a
// successful login or signup. The loan API owns the authoritative record.
type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	Aadhar       string    `json:"aadhar"`
	CreatedAt    time.Time `json:"created_at"`
}

// Admin is the reviewer profile cached in the admin session.
type Admin struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
}
