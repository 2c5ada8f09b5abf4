package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u Usuario) (Usuario, error)
	GetByID(ctx context.Context, id string) (Usuario, error)
	GetByUsername(ctx context.Context, username string) (Usuario, error)
	Deactivate(ctx context.Context, id string) error
}
