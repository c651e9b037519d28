package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
)

// User is the identity carried through a request. Guest is the zero value.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Role         domain.Role
	RegisteredAt time.Time
}

func (u User) IsGuest() bool {
	return u.ID == uuid.Nil
}

func (u User) Actor() domain.Actor {
	return domain.Actor{ID: u.ID, Role: u.Role}
}

type Secret struct {
	PasswordHash []byte
}
