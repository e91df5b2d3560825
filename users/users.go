package users

import (
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// RoleType is a staff role code as issued in the roles claim
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleSuperAdmin RoleType = "SUPER_ADMIN"
	RoleCashier    RoleType = "CASHIER"
)

// User is a staff account known to the mock API
type User struct {
	ID                     int64      `json:"id"`                 // Numeric user ID, issued as the userId claim
	Username               string     `json:"username"`           // Login name, issued as the sub claim
	PasswordHash           string     `json:"-"`                  // bcrypt hash - never serialize
	FullName               string     `json:"fullName"`           // Display name
	Email                  string     `json:"email"`              // Contact address
	Roles                  []RoleType `json:"roles"`              // Role codes
	PasswordChangeRequired bool       `json:"mustChangePassword"` // Forces a password change on next login
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword checks a password against the user's hash
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// RoleNames returns the roles as plain strings
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, string(r))
	}
	return names
}

// HasRole reports whether the user holds role
func (u *User) HasRole(role RoleType) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin returns true if the user has admin or super admin privileges
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(RoleSuperAdmin)
}
