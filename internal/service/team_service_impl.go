package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jongkwon0918/Clippy/internal/db"
	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/repository"
)

type teamService struct {
	teams         repository.TeamRepo
	tasks         repository.TaskRepo
	announcements repository.AnnouncementRepo
	users         repository.UserRepo
	uow           db.UnitOfWork
	observer      UseCaseObserver
}

func NewTeamService(
	teams repository.TeamRepo,
	tasks repository.TaskRepo,
	announcements repository.AnnouncementRepo,
	users repository.UserRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TeamService {
	return &teamService{
		teams:         teams,
		tasks:         tasks,
		announcements: announcements,
		users:         users,
		uow:           uow,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *teamService) CreateTeam(ctx context.Context, name string, creator *domain.User) (*domain.Team, error) {
	if name == "" {
		return nil, &domain.ValidationError{Issues: []string{"team name must not be empty"}}
	}
	team := &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		Members:   []string{domain.WithAdminTag(creator.Name)},
		CreatedBy: creator.ID,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, teamID string, requester *domain.User) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "team_delete", started, err, map[string]any{"team_id": teamID})
	}()

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if requester == nil || !team.IsCreator(requester.ID) {
		return &domain.PermissionError{Op: "delete the team", Authorized: "the team creator"}
	}

	// Three collections fall together or not at all. The CascadeError still
	// names the part that failed, for the operator reading the log.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txAnnouncements := repository.NewSQLiteAnnouncementRepo(tx)
		txTeams := repository.NewSQLiteTeamRepo(tx)

		if err := txTasks.DeleteByTeam(ctx, teamID); err != nil {
			return &domain.CascadeError{Part: "tasks", Err: err}
		}
		if err := txAnnouncements.DeleteByTeam(ctx, teamID); err != nil {
			return &domain.CascadeError{Part: "announcements", Err: err}
		}
		if err := txTeams.Delete(ctx, teamID); err != nil {
			return &domain.CascadeError{Part: "team", Err: err}
		}
		return nil
	})
	return err
}

func (s *teamService) Join(ctx context.Context, teamID, inviteCode string) (*domain.Team, error) {
	user, err := s.users.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.HasMember(user.Name) {
		return team, nil
	}
	if err := s.teams.AddMember(ctx, teamID, user.Name); err != nil {
		return nil, err
	}
	return s.teams.GetByID(ctx, teamID)
}

func (s *teamService) Leave(ctx context.Context, teamID string, member *domain.User) error {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if !team.HasMember(member.Name) {
		return &domain.NotFoundError{Kind: "team member", Key: member.Name}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTeams := repository.NewSQLiteTeamRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txAnnouncements := repository.NewSQLiteAnnouncementRepo(tx)

		if err := txTeams.RemoveMember(ctx, teamID, member.Name); err != nil {
			return err
		}
		// Leaving resets team communications entirely.
		if err := txAnnouncements.DeleteByTeam(ctx, teamID); err != nil {
			return err
		}

		// Only the leaver's tasks go; teammates keep theirs.
		teamTasks, err := txTasks.List(ctx, repository.TaskFilter{
			Source: domain.SourceTeam,
			TeamID: teamID,
		})
		if err != nil {
			return err
		}
		for _, task := range teamTasks {
			if domain.AssigneeMatches(task.Assignee, member.Name) {
				if err := txTasks.Delete(ctx, task.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *teamService) AddAnnouncement(ctx context.Context, teamID, content string, author *domain.User) (*domain.Announcement, error) {
	if content == "" {
		return nil, &domain.ValidationError{Issues: []string{"announcement content must not be empty"}}
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	announcement := &domain.Announcement{
		ID:        uuid.New().String(),
		TeamID:    teamID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(domain.DateLayout),
		Author:    author.Name,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *teamService) Announcements(ctx context.Context, teamID string) ([]*domain.Announcement, error) {
	return s.announcements.ListByTeam(ctx, teamID)
}

func (s *teamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}
