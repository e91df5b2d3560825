package session

import (
	"github.com/jrsteele09/temco-admin/internal/utils"
)

const (
	// WildcardPermission grants every permission key.
	WildcardPermission = "*"

	// OperatorRole is the role restored when an impersonation ends.
	OperatorRole = "ADMIN"
)

// Identity is the principal the console is acting as
type Identity struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Clone returns a deep copy.
func (i Identity) Clone() Identity {
	i.Permissions = utils.CloneStrings(i.Permissions)
	return i
}

// HasPermission reports whether the identity holds key, either literally or via the wildcard.
// Matching is exact: "users.*" does not grant "users.view".
func (i Identity) HasPermission(key string) bool {
	for _, p := range i.Permissions {
		if p == WildcardPermission || p == key {
			return true
		}
	}
	return false
}

// OperatorRef is the minimal snapshot of the operator kept while impersonating.
// It deliberately carries no permissions.
type OperatorRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

func operatorRefOf(i Identity) *OperatorRef {
	return &OperatorRef{
		ID:       i.ID,
		Username: i.Username,
		FullName: i.FullName,
	}
}

// restoredOperator is what StopImpersonation puts back. Email is not part of the
// snapshot so it comes back empty.
func (o OperatorRef) restoredOperator() Identity {
	return Identity{
		ID:          o.ID,
		Username:    o.Username,
		FullName:    o.FullName,
		Email:       "",
		Role:        OperatorRole,
		Permissions: []string{WildcardPermission},
	}
}

// IdentityPatch holds the fields UpdateUser merges; nil fields are left alone.
type IdentityPatch struct {
	ID          *int64
	Username    *string
	Email       *string
	FullName    *string
	Role        *string
	Permissions *[]string
}

func (p IdentityPatch) applyTo(i *Identity) {
	utils.Assign(&i.ID, p.ID)
	utils.Assign(&i.Username, p.Username)
	utils.Assign(&i.Email, p.Email)
	utils.Assign(&i.FullName, p.FullName)
	utils.Assign(&i.Role, p.Role)
	if p.Permissions != nil {
		i.Permissions = utils.CloneStrings(*p.Permissions)
	}
}
