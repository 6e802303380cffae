package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/repository"
	"github.com/jongkwon0918/Clippy/internal/testutil"
)

type fixture struct {
	db            *sql.DB
	uow           db.UnitOfWork
	tasks         *repository.SQLiteTaskRepo
	teams         *repository.SQLiteTeamRepo
	announcements *repository.SQLiteAnnouncementRepo
	decisions     *repository.SQLiteDecisionRepo
	users         *repository.SQLiteUserRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:            database,
		uow:           testutil.NewTestUoW(database),
		tasks:         repository.NewSQLiteTaskRepo(database),
		teams:         repository.NewSQLiteTeamRepo(database),
		announcements: repository.NewSQLiteAnnouncementRepo(database),
		decisions:     repository.NewSQLiteDecisionRepo(database),
		users:         repository.NewSQLiteUserRepo(database),
	}
}

func (f *fixture) teamService() TeamService {
	return NewTeamService(f.teams, f.tasks, f.announcements, f.users, f.uow)
}

// failingUoW runs the callback against the real database, then forces a
// rollback. Lets atomicity tests verify that completed writes disappear.
type failingUoW struct {
	inner db.UnitOfWork
}

var errInjected = errors.New("injected failure")

func (f failingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return f.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return errInjected
	})
}
