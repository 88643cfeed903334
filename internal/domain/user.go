package domain

import "time"

// User is an operator account. Accounts are provisioned by administrators;
// there is no self-service registration.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRole is the authorization level of an account.
type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether the string names a known role.
func ValidRole(role string) bool {
	return UserRole(role) == RoleStaff || UserRole(role) == RoleAdmin
}

// UserLogin is the credential payload for the login endpoint.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRoleUpdate is the admin payload changing an account's role.
type UserRoleUpdate struct {
	Role string `json:"role"`
}
