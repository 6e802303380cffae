package repository

import (
	"context"
	"fmt"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// SQLiteAnnouncementRepo implements AnnouncementRepo. Announcements are
// append-only; the only deletes are team-scoped.
type SQLiteAnnouncementRepo struct {
	db db.DBTX
}

// NewSQLiteAnnouncementRepo creates a new SQLiteAnnouncementRepo bound to conn.
func NewSQLiteAnnouncementRepo(conn db.DBTX) *SQLiteAnnouncementRepo {
	return &SQLiteAnnouncementRepo{db: conn}
}

func (r *SQLiteAnnouncementRepo) Create(ctx context.Context, a *domain.Announcement) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO announcements (id, team_id, content, created_at, author) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.TeamID, a.Content, a.CreatedAt, a.Author)
	if err != nil {
		return fmt.Errorf("inserting announcement: %w", err)
	}
	return nil
}

func (r *SQLiteAnnouncementRepo) ListByTeam(ctx context.Context, teamID string) ([]*domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, team_id, content, created_at, author FROM announcements
		 WHERE team_id = ? ORDER BY created_at DESC, id DESC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()

	var out []*domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.TeamID, &a.Content, &a.CreatedAt, &a.Author); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *SQLiteAnnouncementRepo) DeleteByTeam(ctx context.Context, teamID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM announcements WHERE team_id = ?`, teamID); err != nil {
		return fmt.Errorf("deleting team announcements: %w", err)
	}
	return nil
}

func (r *SQLiteAnnouncementRepo) ReplaceAuthor(ctx context.Context, oldName, newName string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET author = ? WHERE author = ?`, newName, oldName); err != nil {
		return fmt.Errorf("rewriting announcement author: %w", err)
	}
	return nil
}
