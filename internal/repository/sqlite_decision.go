package repository

import (
	"context"
	"fmt"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// SQLiteDecisionRepo implements DecisionRepo. The decision log is global and
// append-only: no update or delete exists.
type SQLiteDecisionRepo struct {
	db db.DBTX
}

// NewSQLiteDecisionRepo creates a new SQLiteDecisionRepo bound to conn.
func NewSQLiteDecisionRepo(conn db.DBTX) *SQLiteDecisionRepo {
	return &SQLiteDecisionRepo{db: conn}
}

func (r *SQLiteDecisionRepo) Create(ctx context.Context, d *domain.Decision) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decisions (id, description, created_at) VALUES (?, ?, ?)`,
		d.ID, d.Description, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting decision: %w", err)
	}
	return nil
}

func (r *SQLiteDecisionRepo) List(ctx context.Context) ([]*domain.Decision, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description FROM decisions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Decision
	for rows.Next() {
		var d domain.Decision
		if err := rows.Scan(&d.ID, &d.Description); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
