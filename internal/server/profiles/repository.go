package profiles

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	ListByEmail(ctx context.Context, email string) ([]*Profile, error)
}
