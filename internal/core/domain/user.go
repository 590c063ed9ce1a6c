package domain

import "time"

const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
	RoleAdmin  = "admin"
)

// RegistrableRoles are the roles a user may pick at sign-up. Admin accounts
// are provisioned out of band.
var RegistrableRoles = []string{RoleFarmer, RoleBuyer}

// IsRegistrableRole reports whether role may be chosen at registration.
func IsRegistrableRole(role string) bool {
	for _, r := range RegistrableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User models a registered marketplace identity.
//
// Email and Phone are both optional but at least one must be present. Each is
// unique across the users that carry it; the store's sparse unique indexes
// enforce this, not application code.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
