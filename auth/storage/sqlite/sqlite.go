package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/volunteerhub/auth/storage"
	"github.com/goserg/volunteerhub/auth/users"
	"github.com/goserg/volunteerhub/gen/model"
	"github.com/goserg/volunteerhub/gen/table"
	"github.com/goserg/volunteerhub/internal/domain"
)

// Storage keeps credentials in the users table next to the profile.
type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}
}

var authColumns = sqlite.ColumnList{
	table.Users.ID,
	table.Users.Username,
	table.Users.Email,
	table.Users.Role,
	table.Users.CreatedAt,
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest model.Users
	err := table.Users.
		SELECT(authColumns).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToModel(dest)
}

func (s *Storage) GetUserSecret(ctx context.Context, email string) (users.User, users.Secret, error) {
	var dest model.Users
	err := table.Users.
		SELECT(authColumns, table.Users.PasswordHash).
		WHERE(table.Users.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, users.Secret{}, sql.ErrNoRows
		}
		return users.User{}, users.Secret{}, err
	}
	u, err := convertUserToModel(dest)
	if err != nil {
		return users.User{}, users.Secret{}, err
	}
	return u, users.Secret{PasswordHash: []byte(dest.PasswordHash)}, nil
}

func (s *Storage) SetSecret(ctx context.Context, id uuid.UUID, secret users.Secret) error {
	res, err := table.Users.
		UPDATE(table.Users.PasswordHash).
		SET(sqlite.String(string(secret.PasswordHash))).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func convertUserToModel(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:           id,
		Username:     user.Username,
		Email:        user.Email,
		Role:         domain.Role(user.Role),
		RegisteredAt: user.CreatedAt,
	}, nil
}
