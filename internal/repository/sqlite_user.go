package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
)

// SQLiteUserRepo implements UserRepo: the local user directory (for invite
// code resolution) plus the single-row session marker.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo bound to conn.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, name, invitation_code) VALUES (?, ?, ?, ?)`,
		u.ID, u.Username, u.Name, u.InvitationCode)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getWhere(ctx, "username = ?", username, "user", username)
}

func (r *SQLiteUserRepo) GetByInviteCode(ctx context.Context, code string) (*domain.User, error) {
	return r.getWhere(ctx, "invitation_code = ?", code, "invite code", code)
}

func (r *SQLiteUserRepo) UpdateName(ctx context.Context, id, newName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ? WHERE id = ?`, newName, id)
	if err != nil {
		return fmt.Errorf("updating user name: %w", err)
	}
	return requireRow(res, "user", id)
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return requireRow(res, "user", id)
}

func (r *SQLiteUserRepo) SetCurrent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session (id, user_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id`, id)
	if err != nil {
		return fmt.Errorf("setting session user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) ClearCurrent(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) Current(ctx context.Context) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, u.name, u.invitation_code
		 FROM session s JOIN users u ON u.id = s.user_id
		 WHERE s.id = 1`).
		Scan(&u.ID, &u.Username, &u.Name, &u.InvitationCode)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Kind: "session", Key: "current user"}
	}
	if err != nil {
		return nil, fmt.Errorf("loading session user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepo) getWhere(ctx context.Context, cond string, arg any, kind, key string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, name, invitation_code FROM users WHERE `+cond, arg).
		Scan(&u.ID, &u.Username, &u.Name, &u.InvitationCode)
	if err == sql.ErrNoRows {
		return nil, &domain.NotFoundError{Kind: kind, Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return &u, nil
}
