package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, token string, userID uint64) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO sessions (token, user_id) VALUES (?, ?);", token, userID)
	return err
}

func (r *SessionRepository) GetUserByToken(ctx context.Context, token string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
SELECT u.id, u.email, u.name, u.password_hash, u.role, u.assignee_id, u.created_at
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.token = ?;`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUnauthenticated
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}
