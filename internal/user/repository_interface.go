package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, document, phoneNumber, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id int, role string) error
}
