package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type AssigneeRepository struct {
	db *sqlx.DB
}

type assigneeRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

var _ ports.AssigneeRepository = (*AssigneeRepository)(nil)

func NewAssigneeRepository(db *sqlx.DB) *AssigneeRepository {
	return &AssigneeRepository{db: db}
}

func (r *AssigneeRepository) ListAssignees(ctx context.Context) ([]domain.Assignee, error) {
	var rows []assigneeRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name FROM assignees ORDER BY name;"); err != nil {
		return nil, err
	}

	assignees := make([]domain.Assignee, 0, len(rows))
	for _, row := range rows {
		assignees = append(assignees, domain.Assignee{ID: row.ID, Name: row.Name})
	}
	return assignees, nil
}

func (r *AssigneeRepository) FindAssigneeByName(ctx context.Context, name string) (*domain.Assignee, error) {
	var row assigneeRow
	err := r.db.GetContext(ctx, &row, "SELECT id, name FROM assignees WHERE name = ? ORDER BY id LIMIT 1;", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Assignee{ID: row.ID, Name: row.Name}, nil
}
