package export

import (
	"fmt"
	"strings"

	"scriptstudio/models"
)

// multipleAnswerMarker flags a choice item as multi-select to the importing
// survey tool.
const multipleAnswerMarker = "[[MultipleAnswer]]"

// SurveyImport serializes a questionnaire script into the block-tagged
// plain-text format consumed by the survey tool's importer. Choice and
// Likert questions become exclusive-choice MC items, MultipleChoice items
// carry the multiple-answer marker, FreeText questions become TE items.
// The MC and TE counters are independent, 1-based, and persist across
// blocks. Questions without a type are not representable in this format and
// are dropped without consuming a counter.
func SurveyImport(script *models.Script) string {
	var lines []string
	mc, te := 0, 0

	writeQuestion := func(q models.Question) {
		switch q.Type {
		case models.QuestionTypeSingleChoice, models.QuestionTypeLikertScale:
			mc++
			lines = append(lines, fmt.Sprintf("MC%d. %s", mc, q.Text), "")
			lines = append(lines, q.Options...)
		case models.QuestionTypeMultipleChoice:
			mc++
			lines = append(lines, fmt.Sprintf("MC%d. %s", mc, q.Text), multipleAnswerMarker, "")
			lines = append(lines, q.Options...)
		case models.QuestionTypeFreeText:
			te++
			lines = append(lines, fmt.Sprintf("TE%d. %s", te, q.Text))
		default:
			return
		}
		lines = append(lines, "")
	}

	writeBlock := func(label string, questions []models.Question) {
		if len(questions) == 0 {
			return
		}
		lines = append(lines, fmt.Sprintf("[[Block:%s]]", label))
		for _, q := range questions {
			writeQuestion(q)
		}
		lines = append(lines, "")
	}

	writeBlock(labelOpening, script.Opening)
	for _, section := range script.Core {
		writeBlock(labelCorePrefix+section.Topic, section.Questions)
	}
	writeBlock(labelFollowUps, script.FollowUps)
	writeBlock(labelClosing, script.Closing)

	return strings.Join(lines, "\n")
}
