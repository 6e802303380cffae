package domain

import "fmt"

// PermissionError rejects a mutation the acting user is not authorized for.
// The operation is a no-op; Authorized names the party who may perform it.
type PermissionError struct {
	Op         string
	Authorized string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: only %s may %s", e.Authorized, e.Op)
}

// NotFoundError marks a lookup miss (task, team, user, invite code).
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ValidationError rejects malformed input before anything is staged or
// persisted.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "validation failed: " + e.Issues[0]
	}
	msg := fmt.Sprintf("validation failed (%d issues):", len(e.Issues))
	for _, issue := range e.Issues {
		msg += "\n  - " + issue
	}
	return msg
}

// CascadeError reports which part of a multi-collection cascade failed.
// The enclosing transaction has been rolled back, so no partial state was
// committed, but the caller still learns where the failure occurred.
type CascadeError struct {
	Part string // "team", "tasks" or "announcements"
	Err  error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("team cascade failed deleting %s: %v", e.Part, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }
