package model

import "strings"

// User represents a member of the roster. There are no credentials:
// login asserts an email plus a role tag and nothing else.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,oneof=ADMIN MANAGER VENDOR"`
	Phone string `json:"phone,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// FirstNameToken returns the first whitespace-separated token of the
// user's name, lowercased. Used by the vendor order-visibility heuristic.
func (u User) FirstNameToken() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
