package formatter

import (
	"fmt"
	"strings"

	"github.com/jongkwon0918/Clippy/internal/domain"
)

// FormatTeamList renders teams with roster sizes.
func FormatTeamList(teams []*domain.Team) string {
	rows := make([][]string, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, []string{
			Dim(shortID(team.ID)),
			Bold(team.Name),
			fmt.Sprintf("%d member(s)", len(team.Members)),
		})
	}
	return RenderTable([]string{"ID", "Team", "Roster"}, rows)
}

// FormatTeamDetail renders one team with its full roster in join order.
func FormatTeamDetail(team *domain.Team) string {
	var b strings.Builder
	b.WriteString(Header(team.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("ID:"), Dim(team.ID)))
	b.WriteString(Bold("Members:") + "\n")
	for _, member := range team.Members {
		marker := "•"
		if strings.HasSuffix(member, domain.AdminSuffix) {
			marker = StyleYellow.Render("★")
		}
		b.WriteString("  " + marker + " " + member + "\n")
	}
	return b.String()
}

// FormatAnnouncements renders team notices newest first.
func FormatAnnouncements(announcements []*domain.Announcement) string {
	if len(announcements) == 0 {
		return Dim("No announcements.")
	}
	var b strings.Builder
	for _, a := range announcements {
		b.WriteString(fmt.Sprintf("%s %s %s\n%s\n",
			StyleBlue.Render(a.CreatedAt), Dim("by"), Bold(a.Author), "  "+a.Content))
	}
	return b.String()
}

// FormatDecisions renders the decision log.
func FormatDecisions(decisions []*domain.Decision) string {
	if len(decisions) == 0 {
		return Dim("No decisions recorded.")
	}
	var b strings.Builder
	b.WriteString(Header("Decisions") + "\n")
	for _, d := range decisions {
		b.WriteString("  " + StylePurple.Render("•") + " " + d.Description + "\n")
	}
	return b.String()
}

// FormatUser renders the signed-in profile, including the invitation code
// teammates use to add this user.
func FormatUser(user *domain.User) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(user.Name), Dim("@"+user.Username), Dim("("+shortID(user.ID)+")")))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Invitation code:"), StyleYellow.Render(user.InvitationCode)))
	return b.String()
}
