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

func (s *Storage) CreateOpportunity(ctx context.Context, o domain.Opportunity) error {
	_, err := table.Opportunities.
		INSERT(table.Opportunities.AllColumns).
		MODEL(convertOpportunityFromDomain(o)).
		ExecContext(ctx, s.db)
	if isUniqueViolation(err) {
		return storage.ErrAlreadyExists
	}
	return err
}

func (s *Storage) GetOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	var o model.Opportunities
	err := table.Opportunities.
		SELECT(table.Opportunities.AllColumns).
		WHERE(table.Opportunities.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &o)
	if err != nil {
		return domain.Opportunity{}, notFound(err)
	}
	return convertOpportunityToDomain(o)
}

func (s *Storage) ListOpportunities(ctx context.Context, filter storage.OpportunityFilter) ([]domain.Opportunity, error) {
	condition := sqlite.Bool(true)
	if filter.Status != "" {
		condition = condition.AND(table.Opportunities.Status.EQ(sqlite.String(string(filter.Status))))
	}
	if filter.Category != "" {
		condition = condition.AND(table.Opportunities.Category.EQ(sqlite.String(filter.Category)))
	}
	if filter.NonprofitID != uuid.Nil {
		condition = condition.AND(table.Opportunities.NonprofitID.EQ(sqlite.String(filter.NonprofitID.String())))
	}

	var list []model.Opportunities
	err := table.Opportunities.
		SELECT(table.Opportunities.AllColumns).
		WHERE(condition).
		ORDER_BY(table.Opportunities.CreatedAt.DESC(), table.Opportunities.ID.ASC()).
		QueryContext(ctx, s.db, &list)
	if err != nil {
		return nil, err
	}
	return convertOpportunitiesToDomain(list)
}

func (s *Storage) UpdateOpportunity(ctx context.Context, o domain.Opportunity) error {
	columns := table.Opportunities.MutableColumns.Except(
		table.Opportunities.NonprofitID,
		table.Opportunities.CreatedAt,
	)
	res, err := table.Opportunities.
		UPDATE(columns).
		MODEL(convertOpportunityFromDomain(o)).
		WHERE(table.Opportunities.ID.EQ(sqlite.String(o.ID.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	_, err := inTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, deleteOpportunities(ctx, tx, table.Opportunities.ID.EQ(sqlite.String(id.String())), true)
	})
	return err
}

// deleteOpportunities removes matching opportunities together with their
// applications.
func deleteOpportunities(ctx context.Context, tx *sql.Tx, where sqlite.BoolExpression, mustExist bool) error {
	_, err := table.Applications.
		DELETE().
		WHERE(table.Applications.OpportunityID.IN(
			table.Opportunities.SELECT(table.Opportunities.ID).WHERE(where),
		)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	res, err := table.Opportunities.
		DELETE().
		WHERE(where).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	if !mustExist {
		return nil
	}
	return checkAffected(res)
}
