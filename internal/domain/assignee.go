package domain

import "strings"

// AdminSuffix is the annotation appended to a team creator's membership
// entry. It lives inside the display-name string, so assignee and member
// matching must be tolerant of it.
const AdminSuffix = " (Admin)"

// selfMarkers are assignee values the analyzer emits when a task belongs to
// the speaker. Historical data may carry either the English or the Korean
// marker.
var selfMarkers = map[string]bool{
	"me": true,
	"나": true,
}

// AssigneeMatches reports whether actorName is authorized for a task with
// the given assignee string. The match is case-folded and deliberately
// loose: a self marker always matches, and actorName matching as a
// substring is enough, so that annotated values like "Kim (Admin)" still
// match actor "Kim". This is an approximation, not a security boundary.
func AssigneeMatches(assignee, actorName string) bool {
	a := strings.ToLower(strings.TrimSpace(assignee))
	if selfMarkers[a] {
		return true
	}
	name := strings.ToLower(strings.TrimSpace(actorName))
	if name == "" {
		return false
	}
	return strings.Contains(a, name)
}

// WithAdminTag returns the member entry for a team creator.
func WithAdminTag(name string) string {
	return name + AdminSuffix
}

// StripAdminTag removes the admin annotation if present.
func StripAdminTag(entry string) string {
	return strings.TrimSuffix(entry, AdminSuffix)
}

// MemberEquals reports whether a membership entry belongs to name, either
// as the plain display name or the admin-annotated form. Unlike
// AssigneeMatches this is an exact comparison: membership bookkeeping never
// substring-matches.
func MemberEquals(entry, name string) bool {
	return entry == name || entry == WithAdminTag(name)
}
