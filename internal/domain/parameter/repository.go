package parameter

import "context"

type ParameterRepository interface {
	// GetByKey returns ErrParameterNotFound when the key does not exist.
	GetByKey(ctx context.Context, clave string) (SystemParameter, error)
	List(ctx context.Context) ([]SystemParameter, error)
	Update(ctx context.Context, id string, valor string) (SystemParameter, error)
}
