package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
