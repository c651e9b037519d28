package sqlite

import (
	"context"
	"database/sql"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/gen/model"
	"github.com/goserg/volunteerhub/gen/table"
	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/storage"
)

func (s *Storage) CreateUser(ctx context.Context, user domain.User) error {
	m, err := convertUserFromDomain(user)
	if err != nil {
		return err
	}
	_, err = table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(m).
		ExecContext(ctx, s.db)
	if isUniqueViolation(err) {
		return storage.ErrAlreadyExists
	}
	return err
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var u model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &u)
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return convertUserToDomain(u)
}

func (s *Storage) GetUsers(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	exprs := make([]sqlite.Expression, 0, len(ids))
	for _, id := range ids {
		exprs = append(exprs, sqlite.String(id.String()))
	}
	var list []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		WHERE(table.Users.ID.IN(exprs...)).
		ORDER_BY(table.Users.CreatedAt.ASC(), table.Users.ID.ASC()).
		QueryContext(ctx, s.db, &list)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(list)
}

func (s *Storage) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var list []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		WHERE(table.Users.Role.EQ(sqlite.String(string(role)))).
		ORDER_BY(table.Users.CreatedAt.ASC(), table.Users.ID.ASC()).
		QueryContext(ctx, s.db, &list)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(list)
}

// UpdateUser never touches role, password hash or registration time.
func (s *Storage) UpdateUser(ctx context.Context, user domain.User) error {
	m, err := convertUserFromDomain(user)
	if err != nil {
		return err
	}
	columns := table.Users.MutableColumns.Except(
		table.Users.Role,
		table.Users.PasswordHash,
		table.Users.CreatedAt,
	)
	res, err := table.Users.
		UPDATE(columns).
		MODEL(m).
		WHERE(table.Users.ID.EQ(sqlite.String(user.ID.String()))).
		ExecContext(ctx, s.db)
	if isUniqueViolation(err) {
		return storage.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteUser removes the user with everything they own: applications of a
// volunteer, opportunities of a nonprofit.
func (s *Storage) DeleteUser(ctx context.Context, id uuid.UUID) error {
	_, err := inTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		userID := sqlite.String(id.String())
		_, err := table.Applications.
			DELETE().
			WHERE(table.Applications.VolunteerID.EQ(userID)).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		err = deleteOpportunities(ctx, tx, table.Opportunities.NonprofitID.EQ(userID), false)
		if err != nil {
			return struct{}{}, err
		}
		res, err := table.Users.
			DELETE().
			WHERE(table.Users.ID.EQ(userID)).
			ExecContext(ctx, tx)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, checkAffected(res)
	})
	return err
}
