package domain

// Team holds a roster of display-name strings in join order. The creator's
// entry carries the admin annotation; it is set once at creation and never
// re-derived.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	CreatedBy string   `json:"createdBy"`
}

// IsCreator reports whether the given stable user id created this team.
// Only the creator may delete the team.
func (t *Team) IsCreator(userID string) bool {
	return t.CreatedBy == userID
}

// HasMember reports whether name already appears on the roster, plain or
// admin-annotated.
func (t *Team) HasMember(name string) bool {
	for _, m := range t.Members {
		if MemberEquals(m, name) {
			return true
		}
	}
	return false
}

// PlainMembers returns the roster with admin annotations stripped, for use
// as analyzer context.
func (t *Team) PlainMembers() []string {
	out := make([]string, len(t.Members))
	for i, m := range t.Members {
		out[i] = StripAdminTag(m)
	}
	return out
}
