package user

import (
	"context"
)

type UserService interface {
	// GetProfile returns the authenticated user's profile.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)

	// UpdateProfile updates the mutable profile fields.
	UpdateProfile(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ChangePassword verifies the current password, stores the new hash,
	// and revokes every outstanding refresh token for the user.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// ListEmployees returns every employee-role user (manager only).
	ListEmployees(ctx context.Context) ([]UserResponse, error)
}
