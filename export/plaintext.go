// Package export turns a generated script into its downloadable formats:
// a Markdown-like plain-text outline, the delimited survey-import text
// format, and a paginated PDF. All renderers are pure; none mutates the
// script and none depends on another.
package export

import (
	"strings"

	"scriptstudio/models"
)

// Group labels shared by the plain-text and survey-import renderers. The
// core label embeds the section topic.
const (
	labelOpening    = "Opening / Warm-up Questions"
	labelCorePrefix = "Core Questions: "
	labelFollowUps  = "Follow-ups / Probes"
	labelClosing    = "Closing / Wrap-up"
)

// PlainText flattens a script into a human-readable outline. Non-empty
// groups are emitted in fixed order, each as a "## <label>" heading followed
// by one "- <text>" line per question and indented option lines. Empty
// groups emit nothing.
func PlainText(script *models.Script) string {
	var sb strings.Builder

	writeGroup := func(label string, questions []models.Question) {
		if len(questions) == 0 {
			return
		}
		sb.WriteString("## " + label + "\n")
		for _, q := range questions {
			sb.WriteString("- " + q.Text + "\n")
			for _, opt := range q.Options {
				sb.WriteString("  - " + opt + "\n")
			}
		}
		sb.WriteString("\n")
	}

	writeGroup(labelOpening, script.Opening)
	for _, section := range script.Core {
		writeGroup(labelCorePrefix+section.Topic, section.Questions)
	}
	writeGroup(labelFollowUps, script.FollowUps)
	writeGroup(labelClosing, script.Closing)

	return sb.String()
}
