package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, title, description, priority, status, owner_id, assignee_id, due_date, created_at, updated_at
FROM tasks
`

const selectTaskTagsQuery = `
SELECT tt.task_id, tg.name
FROM task_tags tt
JOIN tags tg ON tg.id = tt.tag_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	OwnerID     sql.NullInt64  `db:"owner_id"`
	AssigneeID  sql.NullInt64  `db:"assignee_id"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type taskTagRow struct {
	TaskID uint64 `db:"task_id"`
	Name   string `db:"name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, selectTaskColumns+"ORDER BY id;"); err != nil {
		return nil, err
	}

	var tagRows []taskTagRow
	if err := r.db.SelectContext(ctx, &tagRows, selectTaskTagsQuery+"ORDER BY tg.name;"); err != nil {
		return nil, err
	}

	tagsByTask := make(map[uint64][]string, len(rows))
	for _, tr := range tagRows {
		tagsByTask[tr.TaskID] = append(tagsByTask[tr.TaskID], tr.Name)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		task.Tags = tagsByTask[row.ID]
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	return getTask(ctx, r.db, taskID)
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var created domain.Task
	err := r.inTransaction(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
INSERT INTO tasks (title, description, priority, status, owner_id, assignee_id, due_date)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
			task.Title,
			task.Description,
			string(task.Priority),
			string(task.Status),
			task.OwnerID,
			task.AssigneeID,
			task.DueDate,
		)
		if err != nil {
			return err
		}

		taskID, err := result.LastInsertId()
		if err != nil {
			return err
		}

		if err := replaceTaskTags(ctx, tx, uint64(taskID), task.Tags); err != nil {
			return err
		}

		created, err = getTask(ctx, tx, uint64(taskID))
		return err
	})
	return created, err
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	var updated domain.Task
	err := r.inTransaction(ctx, func(tx *sqlx.Tx) error {
		setClauses := make([]string, 0, 8)
		args := make([]interface{}, 0, 8)

		if patch.Title != nil {
			setClauses = append(setClauses, "title = ?")
			args = append(args, *patch.Title)
		}
		if patch.DescriptionSet {
			setClauses = append(setClauses, "description = ?")
			args = append(args, patch.Description)
		}
		if patch.Priority != nil {
			setClauses = append(setClauses, "priority = ?")
			args = append(args, string(*patch.Priority))
		}
		if patch.Status != nil {
			setClauses = append(setClauses, "status = ?")
			args = append(args, string(*patch.Status))
		}
		if patch.AssigneeSet {
			setClauses = append(setClauses, "assignee_id = ?")
			args = append(args, patch.AssigneeID)
		}
		if patch.DueDateSet {
			setClauses = append(setClauses, "due_date = ?")
			args = append(args, patch.DueDate)
		}

		if len(setClauses) > 0 {
			setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP")
			query := "UPDATE tasks SET " + strings.Join(setClauses, ", ") + " WHERE id = ?;"
			args = append(args, taskID)

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				if _, err := getTask(ctx, tx, taskID); err != nil {
					return err
				}
			}
		}

		if patch.TagsSet {
			if err := replaceTaskTags(ctx, tx, taskID, patch.Tags); err != nil {
				return err
			}
		}

		var err error
		updated, err = getTask(ctx, tx, taskID)
		return err
	})
	return updated, err
}

func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) (domain.Task, error) {
	var updated domain.Task
	err := r.inTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?;",
			string(status), taskID,
		)
		if err != nil {
			return err
		}

		updated, err = getTask(ctx, tx, taskID)
		return err
	})
	return updated, err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?;", taskID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) inTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// replaceTaskTags performs the full tag replace: drop every association,
// resolve each name to an existing tag or create it, recreate associations.
// Callers wrap this in the same transaction as the field update so a
// concurrent reader never observes a half-replaced tag set.
func replaceTaskTags(ctx context.Context, tx *sqlx.Tx, taskID uint64, tags []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?;", taskID); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(tags))
	for _, name := range tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		// Tags are deduplicated by exact, case-sensitive name.
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tagID, err := resolveTag(ctx, tx, name)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?);",
			taskID, tagID,
		); err != nil {
			return err
		}
	}

	return nil
}

func resolveTag(ctx context.Context, tx *sqlx.Tx, name string) (uint64, error) {
	var tagID uint64
	err := tx.GetContext(ctx, &tagID, "SELECT id FROM tags WHERE name = ? COLLATE utf8mb4_bin;", name)
	if err == nil {
		return tagID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, "INSERT INTO tags (name) VALUES (?);", name)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func getTask(ctx context.Context, q sqlx.QueryerContext, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, selectTaskColumns+"WHERE id = ?;", taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	var tagRows []taskTagRow
	if err := sqlx.SelectContext(ctx, q, &tagRows, selectTaskTagsQuery+"WHERE tt.task_id = ? ORDER BY tg.name;", taskID); err != nil {
		return domain.Task{}, err
	}

	task := mapTaskRowToDomainTask(row)
	for _, tr := range tagRows {
		task.Tags = append(task.Tags, tr.Name)
	}
	return task, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.OwnerID.Valid {
		value := uint64(row.OwnerID.Int64)
		task.OwnerID = &value
	}

	if row.AssigneeID.Valid {
		value := uint64(row.AssigneeID.Int64)
		task.AssigneeID = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
