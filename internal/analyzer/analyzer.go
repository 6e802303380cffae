package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jongkwon0918/Clippy/internal/domain"
	"github.com/jongkwon0918/Clippy/internal/llm"
)

// ErrAnalysisFailed wraps every analyzer failure mode. Callers only need to
// know that no draft was produced; the underlying cause rides along for logs.
var ErrAnalysisFailed = errors.New("meeting analysis failed")

// Service turns meeting content into a reviewable draft.
type Service interface {
	// Analyze extracts a summary, draft tasks and decisions from content.
	// For audio MIME types, content is the base64-encoded recording;
	// otherwise it is the transcript text. teamRoster, when non-empty, is
	// surfaced to the model so assignees resolve to known member names.
	Analyze(ctx context.Context, content, mimeType string, teamRoster []string) (*domain.DraftResult, error)
}

type geminiAnalyzer struct {
	client llm.Client
	now    func() time.Time
}

// NewService creates an analyzer backed by the given model client.
func NewService(client llm.Client) Service {
	return &geminiAnalyzer{client: client, now: time.Now}
}

// Wire shapes for the model's JSON response. Drafts carry no ids and no
// completion state; both are stamped at confirm time, not here.
type draftPayload struct {
	Summary   string             `json:"summary"`
	Tasks     []draftTaskPayload `json:"tasks"`
	Decisions []decisionPayload  `json:"decisions"`
}

type draftTaskPayload struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	Department  string `json:"department"`
	Deadline    string `json:"deadline"`
}

type decisionPayload struct {
	Description string `json:"description"`
}

func (a *geminiAnalyzer) Analyze(ctx context.Context, content, mimeType string, teamRoster []string) (*domain.DraftResult, error) {
	req := llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: buildSystemPrompt(a.now(), teamRoster),
	}

	if strings.HasPrefix(mimeType, "audio/") {
		req.UserPrompt = audioUserPrompt
		req.Inline = &llm.InlineData{MIMEType: mimeType, Data: content}
	} else {
		req.UserPrompt = textUserPrompt(content)
	}

	resp, err := a.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	payload, err := llm.ExtractJSON[draftPayload](resp.Text, validateDraft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	return payload.toDomain(), nil
}

// validateDraft rejects a parsed payload whose fields would not survive
// domain validation at confirm time. The whole draft is rejected; a single
// bad task never yields a partial draft.
func validateDraft(p draftPayload) error {
	var issues []string

	if strings.TrimSpace(p.Summary) == "" {
		issues = append(issues, "summary is empty")
	}
	for i, t := range p.Tasks {
		normalized := t.normalize()
		if strings.TrimSpace(normalized.Description) == "" {
			issues = append(issues, fmt.Sprintf("task %d: description is empty", i))
		}
		if !domain.ValidPriorities[domain.Priority(normalized.Priority)] {
			issues = append(issues, fmt.Sprintf("task %d: invalid priority %q", i, t.Priority))
		}
		if err := domain.ValidateDeadline(normalized.Deadline); err != nil {
			issues = append(issues, fmt.Sprintf("task %d: %v", i, err))
		}
	}
	for i, d := range p.Decisions {
		if strings.TrimSpace(d.Description) == "" {
			issues = append(issues, fmt.Sprintf("decision %d: description is empty", i))
		}
	}

	if len(issues) > 0 {
		return &domain.ValidationError{Issues: issues}
	}
	return nil
}

// normalize smooths over the model drifts that show up in practice: priority
// casing, a missing deadline rendered as an empty string, blank assignee or
// department fields.
func (t draftTaskPayload) normalize() draftTaskPayload {
	out := t
	out.Description = strings.TrimSpace(t.Description)

	switch strings.ToLower(strings.TrimSpace(t.Priority)) {
	case "high":
		out.Priority = string(domain.PriorityHigh)
	case "medium":
		out.Priority = string(domain.PriorityMedium)
	case "low":
		out.Priority = string(domain.PriorityLow)
	}

	out.Assignee = strings.TrimSpace(t.Assignee)
	if out.Assignee == "" {
		out.Assignee = "Unassigned"
	}
	out.Department = strings.TrimSpace(t.Department)
	if out.Department == "" {
		out.Department = "General"
	}

	out.Deadline = strings.TrimSpace(t.Deadline)
	if out.Deadline == "" {
		out.Deadline = domain.NoDeadline
	}
	return out
}

func (p draftPayload) toDomain() *domain.DraftResult {
	result := &domain.DraftResult{
		Summary:   strings.TrimSpace(p.Summary),
		Tasks:     make([]domain.DraftTask, 0, len(p.Tasks)),
		Decisions: make([]domain.Decision, 0, len(p.Decisions)),
	}
	for _, t := range p.Tasks {
		n := t.normalize()
		result.Tasks = append(result.Tasks, domain.DraftTask{
			Description: n.Description,
			Assignee:    n.Assignee,
			Priority:    domain.Priority(n.Priority),
			Department:  n.Department,
			Deadline:    n.Deadline,
		})
	}
	for _, d := range p.Decisions {
		result.Decisions = append(result.Decisions, domain.Decision{
			Description: strings.TrimSpace(d.Description),
		})
	}
	return result
}
