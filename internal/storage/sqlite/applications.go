package sqlite

import (
	"context"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/gen/model"
	"github.com/goserg/volunteerhub/gen/table"
	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/storage"
)

func (s *Storage) CreateApplication(ctx context.Context, a domain.Application) error {
	_, err := table.Applications.
		INSERT(table.Applications.AllColumns).
		MODEL(convertApplicationFromDomain(a)).
		ExecContext(ctx, s.db)
	if isUniqueViolation(err) {
		return storage.ErrAlreadyExists
	}
	return err
}

func (s *Storage) GetApplication(ctx context.Context, id uuid.UUID) (domain.Application, error) {
	var a model.Applications
	err := table.Applications.
		SELECT(table.Applications.AllColumns).
		WHERE(table.Applications.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &a)
	if err != nil {
		return domain.Application{}, notFound(err)
	}
	return convertApplicationToDomain(a)
}

func (s *Storage) ListApplications(ctx context.Context, filter storage.ApplicationFilter) ([]domain.Application, error) {
	condition := sqlite.Bool(true)
	if filter.OpportunityID != uuid.Nil {
		condition = condition.AND(table.Applications.OpportunityID.EQ(sqlite.String(filter.OpportunityID.String())))
	}
	if filter.VolunteerID != uuid.Nil {
		condition = condition.AND(table.Applications.VolunteerID.EQ(sqlite.String(filter.VolunteerID.String())))
	}
	var list []model.Applications
	err := table.Applications.
		SELECT(table.Applications.AllColumns).
		WHERE(condition).
		ORDER_BY(table.Applications.CreatedAt.ASC(), table.Applications.ID.ASC()).
		QueryContext(ctx, s.db, &list)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Application, 0, len(list))
	for _, m := range list {
		a, err := convertApplicationToDomain(m)
		if err != nil {
			return nil, err
		}
		converted = append(converted, a)
	}
	return converted, nil
}

func (s *Storage) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, at time.Time) error {
	res, err := table.Applications.
		UPDATE(table.Applications.Status, table.Applications.UpdatedAt).
		MODEL(model.Applications{
			Status:    string(status),
			UpdatedAt: at.UTC(),
		}).
		WHERE(table.Applications.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	res, err := table.Applications.
		DELETE().
		WHERE(table.Applications.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
