package domain

// Decision records an agreement reached in a meeting. Append-only: decisions
// are never edited and survive team deletion.
type Decision struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
