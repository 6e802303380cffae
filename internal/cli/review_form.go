package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jongkwon0918/Clippy/internal/service"
)

// runReviewForm walks the user through curating a staged draft: pick which
// tasks to keep, optionally fix assignees (team mode), then confirm.
// Returns false when the user backs out; the caller cancels the session.
func runReviewForm(app *App, session *service.ReviewSession, roster []string) (bool, error) {
	if len(session.Staged) > 0 {
		if ok, err := runSelectionForm(app, session); err != nil || !ok {
			return ok, err
		}
		// Personal confirms override assignees anyway; only team drafts
		// are worth editing.
		if session.Context.Mode == service.ModeTeam {
			if ok, err := runAssigneeForm(app, session, roster); err != nil || !ok {
				return ok, err
			}
		}
	}

	save := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Save the selected tasks and decisions?").
			Affirmative("Save").
			Negative("Discard").
			Value(&save),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return save, nil
}

func runSelectionForm(app *App, session *service.ReviewSession) (bool, error) {
	options := make([]huh.Option[string], 0, len(session.Staged))
	selected := make([]string, 0, len(session.Staged))
	for _, staged := range session.Staged {
		label := fmt.Sprintf("%s (%s, %s)", staged.Task.Description, staged.Task.Assignee, staged.Task.Priority)
		options = append(options, huh.NewOption(label, staged.ID))
		if staged.Selected {
			selected = append(selected, staged.ID)
		}
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Which tasks should be kept?").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	keep := make(map[string]bool, len(selected))
	for _, id := range selected {
		keep[id] = true
	}
	for _, staged := range session.Staged {
		var err error
		if keep[staged.ID] {
			err = app.Reviews.Select(session, staged.ID)
		} else {
			err = app.Reviews.Deselect(session, staged.ID)
		}
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// runAssigneeForm lets the reviewer fix assignees on the kept tasks. Edit
// targets are the team's current member names; the analyzer's original value
// stays available so an untouched field is not forced onto the roster.
func runAssigneeForm(app *App, session *service.ReviewSession, roster []string) (bool, error) {
	type edit struct {
		stagedID string
		value    string
	}
	edits := make([]*edit, 0, len(session.Staged))
	fields := make([]huh.Field, 0, len(session.Staged))
	for _, staged := range session.Staged {
		if !staged.Selected {
			continue
		}
		e := &edit{stagedID: staged.ID, value: staged.Task.Assignee}
		edits = append(edits, e)
		fields = append(fields, huh.NewSelect[string]().
			Title(staged.Task.Description).
			Description("Assignee").
			Options(assigneeOptions(roster, staged.Task.Assignee)...).
			Value(&e.value))
	}
	if len(fields) == 0 {
		return true, nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	for _, e := range edits {
		if e.value == "" {
			continue
		}
		if err := app.Reviews.Reassign(session, e.stagedID, e.value); err != nil {
			return false, err
		}
	}
	return true, nil
}

func assigneeOptions(roster []string, current string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(roster)+1)
	seen := false
	for _, name := range roster {
		if name == current {
			seen = true
		}
		options = append(options, huh.NewOption(name, name))
	}
	if !seen {
		options = append([]huh.Option[string]{huh.NewOption(current+" (as analyzed)", current)}, options...)
	}
	return options
}
