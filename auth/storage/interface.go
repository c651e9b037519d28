package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/auth/users"
)

type AuthStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	// GetUserSecret looks the user up by email.
	GetUserSecret(ctx context.Context, email string) (users.User, users.Secret, error)
	SetSecret(ctx context.Context, id uuid.UUID, secret users.Secret) error
}
