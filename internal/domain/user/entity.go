package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve, archive, and delete
	RoleOperator Role = "operator" // Can register personnel and mark attendance
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user can approve requests and manage the archive.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
