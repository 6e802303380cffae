package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, description, assignee, priority, department, deadline,
		completed, source, team_id, related_summary`

// SQLiteTaskRepo implements TaskRepo on a SQLite database or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo bound to conn.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := nowUTC()
	query := `INSERT INTO tasks (id, description, assignee, priority, department, deadline,
		completed, source, team_id, related_summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Description,
		t.Assignee,
		string(t.Priority),
		t.Department,
		t.Deadline,
		boolToInt(t.Completed),
		string(t.Source),
		t.TeamID,
		t.RelatedSummary,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Kind: "task", Key: id}
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context, f TaskFilter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var conds []string
	var args []any
	if f.Source != "" {
		conds = append(conds, "source = ?")
		args = append(args, string(f.Source))
	}
	if f.TeamID != "" {
		conds = append(conds, "team_id = ?")
		args = append(args, f.TeamID)
	}
	if f.Assignee != "" {
		conds = append(conds, "assignee = ?")
		args = append(args, f.Assignee)
	}
	if f.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, boolToInt(*f.Completed))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET description = ?, assignee = ?, priority = ?, department = ?,
		deadline = ?, completed = ?, source = ?, team_id = ?, related_summary = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Description,
		t.Assignee,
		string(t.Priority),
		t.Department,
		t.Deadline,
		boolToInt(t.Completed),
		string(t.Source),
		t.TeamID,
		t.RelatedSummary,
		nowUTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`,
		boolToInt(completed), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating task completion: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *SQLiteTaskRepo) DeleteByTeam(ctx context.Context, teamID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE team_id = ?`, teamID); err != nil {
		return fmt.Errorf("deleting team tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ReplaceAssignee(ctx context.Context, oldName, newName string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assignee = ?, updated_at = ? WHERE assignee = ?`,
		newName, nowUTC(), oldName); err != nil {
		return fmt.Errorf("rewriting task assignee: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assignee = ?, updated_at = ? WHERE assignee = ?`,
		domain.WithAdminTag(newName), nowUTC(), domain.WithAdminTag(oldName)); err != nil {
		return fmt.Errorf("rewriting annotated task assignee: %w", err)
	}
	return nil
}

// requireRow turns a zero-row Exec result into a NotFoundError.
func requireRow(res sql.Result, kind, key string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Kind: kind, Key: key}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var completed int
	var priority, source string
	err := row.Scan(
		&t.ID,
		&t.Description,
		&t.Assignee,
		&priority,
		&t.Department,
		&t.Deadline,
		&completed,
		&source,
		&t.TeamID,
		&t.RelatedSummary,
	)
	if err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	t.Source = domain.TaskSource(source)
	t.Completed = intToBool(completed)
	return &t, nil
}

func scanTaskRows(rows *sql.Rows) (*domain.Task, error) {
	t, err := scanTask(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}
