package summary

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/standupbot/internal/models"
)

const promptInstructions = `---

OUTPUT REQUIREMENTS
You MUST follow the format below EXACTLY.
Do NOT add extra sections.
Do NOT add commentary outside the sections.
Do NOT use vague or motivational language.

---

## 🎯 Today's Focus Areas
- Group work by FEATURE, MODULE, or INITIATIVE (not by person).
- Under each group, list:
  - Person name
  - Exact task or outcome they are working on
- If someone's update is vague, rewrite it into a concrete task without inventing facts.

## 🛠️ Technical Updates
- Include ONLY concrete technical details:
  - Code changes, APIs, infra, architecture, bugs, refactors, tooling
- Mention technologies, systems, or components explicitly when available.
- If there are NO meaningful technical updates, OMIT this section entirely.

## ⚠️ Blockers (Immediate Attention Required)
- List EVERY blocker explicitly.
- Format each blocker as:
  - **Name** — [CATEGORY]: blocker description
- Highlight:
  - Dependencies on other team members
  - Dependencies on external teams or systems
- If NO blockers exist, write exactly:
  ✅ No blockers reported

## 🚨 Risks & Dependencies
Identify REAL risks based ONLY on the provided data:
- Parallel work that may conflict or require coordination
- Work blocked by unresolved dependencies
- Patterns suggesting schedule or delivery risk
DO NOT speculate beyond the responses.

## ❌ Missing Responses
%s

---

STRICT RULES (NON-NEGOTIABLE):
- ONLY list names in "Missing Responses" if they are explicitly provided above.
- DO NOT assume someone is missing based on mentions in other updates.
- DO NOT write generic phrases like:
  - "The team worked on various tasks"
  - "Progress is being made"
- DO NOT invent work, blockers, or risks.
- Be concise, factual, and execution-focused.
- Use Discord markdown ONLY (**bold**, - bullets).
`

// buildPrompt renders the model prompt for a date
func buildPrompt(input *GenerateInput) string {
	var b strings.Builder

	b.WriteString("You are an experienced Engineering Manager preparing a DAILY STANDUP REPORT for leadership.\n")
	b.WriteString("This summary will be read by founders and tech leads, so clarity and accountability matter.\n\n")
	fmt.Fprintf(&b, "Below are raw standup responses for %s. Your job is to transform them into a\n", input.StandupDate)
	b.WriteString("CLEAR, STRUCTURED, ACTIONABLE report.\n\nINPUT:\n")

	for _, r := range input.Responses {
		writeResponse(&b, r)
	}

	b.WriteString("\n### BLOCKS:\n")
	blocked := 0
	for _, r := range input.Responses {
		if !r.IsBlocked() {
			continue
		}
		blocked++
		fmt.Fprintf(&b, "- %s [%s]: %s\n", r.ParticipantName, blockerCategory(r), r.BlockerDetail)
	}
	if blocked == 0 {
		b.WriteString("- None reported\n")
	}

	b.WriteString("### NON-RESPONDERS:\n")
	missing := missingList(input.NonResponders)
	if missing == "" {
		b.WriteString("- None\n")
	} else {
		b.WriteString(missing + "\n")
	}
	b.WriteString("\n")

	missingSection := "✅ All registered users responded"
	if missing != "" {
		missingSection = missing
	}
	fmt.Fprintf(&b, promptInstructions, missingSection)

	return b.String()
}

func writeResponse(b *strings.Builder, r *models.StandupResponse) {
	fmt.Fprintf(b, "\n**%s**", r.ParticipantName)
	if r.IsLate {
		b.WriteString(" (LATE)")
	}
	if r.Mood != nil {
		fmt.Fprintf(b, " [Mood: %d/5]", *r.Mood)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "- Yesterday: %s\n", orText(r.Yesterday, "N/A"))
	fmt.Fprintf(b, "- Today: %s\n", orText(r.Today, "N/A"))
	fmt.Fprintf(b, "- Technical: %s\n", orText(r.Technical, models.NoneText))
	fmt.Fprintf(b, "- Blocker [%s]: %s\n", orText(string(r.BlockerCategory), models.NoneText), orText(r.BlockerDetail, models.NoneText))
}

// blockerCategory labels a blocked response whose category was left as none
func blockerCategory(r *models.StandupResponse) string {
	if r.BlockerCategory == "" || r.BlockerCategory.IsNone() {
		return string(models.BlockerOther)
	}
	return string(r.BlockerCategory)
}

func missingList(participants []*models.Participant) string {
	lines := make([]string, 0, len(participants))
	for _, p := range participants {
		lines = append(lines, "- "+p.Name)
	}
	return strings.Join(lines, "\n")
}

func orText(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
