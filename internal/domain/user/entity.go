package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Can view and manage everyone's attendance
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles lists every role accepted at registration.
var ValidRoles = []string{
	string(RoleManager),
	string(RoleEmployee),
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeCode string
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
