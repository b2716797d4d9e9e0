package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u User) (int, error)
	FindByID(ctx context.Context, id int) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
