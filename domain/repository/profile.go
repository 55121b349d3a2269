package repository

import (
	"context"

	"swishview/domain/model"
)

type IProfile interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	SetRole(ctx context.Context, id string, role model.UserRole) error
	CountUsers(ctx context.Context) (int64, error)
}
