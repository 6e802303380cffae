package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// SQLiteTeamRepo implements TeamRepo. Roster entries live in team_members
// ordered by position; the admin annotation is part of the entry string.
type SQLiteTeamRepo struct {
	db db.DBTX
}

// NewSQLiteTeamRepo creates a new SQLiteTeamRepo bound to conn.
func NewSQLiteTeamRepo(conn db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: conn}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, created_by, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.CreatedBy, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	for i, entry := range t.Members {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO team_members (team_id, position, entry) VALUES (?, ?, ?)`,
			t.ID, i, entry); err != nil {
			return fmt.Errorf("inserting team member: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	var t domain.Team
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by FROM teams WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Kind: "team", Key: id}
	}
	if err != nil {
		return nil, fmt.Errorf("loading team: %w", err)
	}
	members, err := r.loadMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return &t, nil
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_by FROM teams ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range teams {
		members, err := r.loadMembers(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Members = members
	}
	return teams, nil
}

func (r *SQLiteTeamRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return requireRow(res, "team", id)
}

func (r *SQLiteTeamRepo) AddMember(ctx context.Context, teamID, entry string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (team_id, position, entry)
		 VALUES (?, (SELECT COALESCE(MAX(position) + 1, 0) FROM team_members WHERE team_id = ?), ?)`,
		teamID, teamID, entry)
	if err != nil {
		return fmt.Errorf("adding team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) RemoveMember(ctx context.Context, teamID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE team_id = ? AND entry IN (?, ?)`,
		teamID, name, domain.WithAdminTag(name))
	if err != nil {
		return fmt.Errorf("removing team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) RenameMember(ctx context.Context, oldName, newName string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET entry = ? WHERE entry = ?`, newName, oldName); err != nil {
		return fmt.Errorf("renaming team member: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET entry = ? WHERE entry = ?`,
		domain.WithAdminTag(newName), domain.WithAdminTag(oldName)); err != nil {
		return fmt.Errorf("renaming annotated team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) loadMembers(ctx context.Context, teamID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT entry FROM team_members WHERE team_id = ? ORDER BY position`, teamID)
	if err != nil {
		return nil, fmt.Errorf("loading team members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		members = append(members, entry)
	}
	return members, rows.Err()
}
