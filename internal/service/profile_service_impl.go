package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

type profileService struct {
	users repository.UserRepo
	uow   db.UnitOfWork
}

func NewProfileService(users repository.UserRepo, uow db.UnitOfWork) ProfileService {
	return &profileService{users: users, uow: uow}
}

func (s *profileService) Register(ctx context.Context, username, name string) (*domain.User, error) {
	var issues []string
	if strings.TrimSpace(username) == "" {
		issues = append(issues, "username must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		issues = append(issues, "display name must not be empty")
	}
	if len(issues) > 0 {
		return nil, &domain.ValidationError{Issues: issues}
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Name:           name,
		InvitationCode: newInviteCode(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.users.SetCurrent(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) Login(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetCurrent(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) Logout(ctx context.Context) error {
	return s.users.ClearCurrent(ctx)
}

func (s *profileService) Current(ctx context.Context) (*domain.User, error) {
	return s.users.Current(ctx)
}

func (s *profileService) Rename(ctx context.Context, user *domain.User, newName string) (*domain.User, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, &domain.ValidationError{Issues: []string{"display name must not be empty"}}
	}
	if newName == user.Name {
		return user, nil
	}

	// The display name is denormalized into three collections; all copies
	// move together or the rename did not happen.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txTeams := repository.NewSQLiteTeamRepo(tx)
		txAnnouncements := repository.NewSQLiteAnnouncementRepo(tx)

		if err := txUsers.UpdateName(ctx, user.ID, newName); err != nil {
			return err
		}
		if err := txTasks.ReplaceAssignee(ctx, user.Name, newName); err != nil {
			return err
		}
		if err := txTeams.RenameMember(ctx, user.Name, newName); err != nil {
			return err
		}
		return txAnnouncements.ReplaceAuthor(ctx, user.Name, newName)
	})
	if err != nil {
		return nil, err
	}

	renamed := *user
	renamed.Name = newName
	return &renamed, nil
}

func (s *profileService) DeleteAccount(ctx context.Context, user *domain.User) error {
	return s.users.Delete(ctx, user.ID)
}

// newInviteCode returns a short shareable token. Uniqueness is enforced by
// the users table; six hex characters keep collisions rare at this scale.
func newInviteCode() string {
	return strings.ToUpper(uuid.New().String()[:6])
}
