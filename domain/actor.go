package domain

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

// Actor identifies the authenticated user performing an operation, resolved by
// the external auth layer before any feedback service is called.
type Actor struct {
	ID   string `json:"id" yaml:"id"`
	Role Role   `json:"role" yaml:"role"`
}

// IsPrivileged reports whether the actor holds an admin or owner role.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleOwner
}
