package domain

import "time"

// Back-office operator roles.
const (
	RoleAdmin      = "admin"
	RoleOperations = "operations"
	RoleFinance    = "finance"
)

// ValidRole reports whether role is a known operator role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperations || role == RoleFinance
}

// User models an authenticated back-office operator.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
