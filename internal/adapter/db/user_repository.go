package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const selectUserColumns = `
SELECT id, email, name, password_hash, role, assignee_id, created_at
FROM users
`

// MySQL error 1062: duplicate entry for a unique key.
const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64        `db:"id"`
	Email        string        `db:"email"`
	Name         string        `db:"name"`
	PasswordHash string        `db:"password_hash"`
	Role         string        `db:"role"`
	AssigneeID   sql.NullInt64 `db:"assignee_id"`
	CreatedAt    time.Time     `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserColumns+"WHERE id = ?;", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserColumns+"WHERE email = ?;", email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO users (email, name, password_hash, role, assignee_id)
VALUES (?, ?, ?, ?, ?);`,
		user.Email,
		user.Name,
		user.PasswordHash,
		string(user.Role),
		user.AssigneeID,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetUserByID(ctx, uint64(userID))
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}

	if row.AssigneeID.Valid {
		value := uint64(row.AssigneeID.Int64)
		user.AssigneeID = &value
	}

	return user
}
