package domain

// Announcement is an immutable team notice. There is no edit or single
// delete; announcements disappear only when their team is deleted or a
// member leaves (full reset of team communications).
type Announcement struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // YYYY-MM-DD
	Author    string `json:"author"`    // denormalized display name
}
