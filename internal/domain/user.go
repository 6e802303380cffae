package domain

// User is the resolved session identity. ID is stable; Name is the display
// name that gets denormalized into tasks, rosters and announcements.
// InvitationCode is a short token that lets others add this user to a team
// without knowing the stable id.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	InvitationCode string `json:"invitationCode"`
}
