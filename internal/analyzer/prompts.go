package analyzer

import (
	"fmt"
	"strings"
	"time"
)

// buildSystemPrompt assembles the meeting-assistant instruction. Relative
// deadline phrases in the transcript are resolved against the reference time
// embedded here, so the same transcript analyzed on different days yields
// different absolute dates.
func buildSystemPrompt(now time.Time, teamRoster []string) string {
	currentDateTime := now.Format("2006-01-02 15:04 (Monday)")

	var teamInfo string
	var rosterRule string
	if len(teamRoster) > 0 {
		teamInfo = fmt.Sprintf("Current team members: [%s].\n", strings.Join(teamRoster, ", "))
		rosterRule = "    - IMPORTANT: when a name from the team member list above is identified in the conversation, use that member's name exactly as listed for the assignee.\n"
	}

	return fmt.Sprintf(`You are a professional meeting assistant named Clippy. Analyze the provided meeting minutes (text or audio).
Your job is to extract a summary, action items (tasks), and key decisions.

Reference current time: %s
%s
Guidelines:
1.  Summary: summarize the main points of the conversation concisely and neutrally, in 2-3 sentences.
2.  Tasks: identify clear, actionable items. For each task determine a description, an assignee, a priority (High, Medium, Low), a department, and a deadline.
    - Assignee: never use placeholder labels like "person 1" or "staff A". Write the real name identified in the conversation (e.g. Kim Min-su, Park Ji-min).
%s    - When a speaker says "I'll do it", use that speaker's name; when the speaker is unclear or this is a personal memo, write "me". If there is no assignee write "Unassigned"; if the department is unclear write "General".
3.  Deadline (important): relative expressions like "tomorrow", "tonight" or "next Tuesday" MUST be converted to an absolute date ("YYYY-MM-DD") or date with time ("YYYY-MM-DD HH:mm") computed from the reference current time above, precise enough for a calendar entry. If there is no deadline write "no deadline".
4.  Decisions: capture the explicit conclusions or agreements that were reached.

Return the result strictly as a JSON object with this shape, and nothing else:
{
  "summary": string,
  "tasks": [{"description": string, "assignee": string, "priority": string, "department": string, "deadline": string}],
  "decisions": [{"description": string}]
}`, currentDateTime, teamInfo, rosterRule)
}

const audioUserPrompt = "Analyze the following audio file and extract the summary, tasks and decisions."

func textUserPrompt(content string) string {
	return fmt.Sprintf("Analyze the following text:\n\n---\n%s\n---", content)
}
