package services

import (
	"fmt"

	"scriptstudio/models"
)

// ErrQuestionNotFound is returned when an edit addresses an id that does not
// exist in the targeted group.
var ErrQuestionNotFound = fmt.Errorf("question not found")

// UpdateQuestionText returns a new script with the targeted question's text
// replaced. Only the slices on the path to the question are copied; every
// untouched section and question is shared with the input, which is never
// mutated. For the core group, sectionIndex selects a section; pass a
// negative index to search all sections by id.
func UpdateQuestionText(script *models.Script, group models.GroupKey, sectionIndex int, questionID, newText string) (*models.Script, error) {
	updated := *script

	replaceIn := func(questions []models.Question) ([]models.Question, bool) {
		for i, q := range questions {
			if q.ID == questionID {
				patched := make([]models.Question, len(questions))
				copy(patched, questions)
				patched[i].Text = newText
				return patched, true
			}
		}
		return questions, false
	}

	switch group {
	case models.GroupOpening:
		if patched, ok := replaceIn(script.Opening); ok {
			updated.Opening = patched
			return &updated, nil
		}
	case models.GroupFollowUps:
		if patched, ok := replaceIn(script.FollowUps); ok {
			updated.FollowUps = patched
			return &updated, nil
		}
	case models.GroupClosing:
		if patched, ok := replaceIn(script.Closing); ok {
			updated.Closing = patched
			return &updated, nil
		}
	case models.GroupCore:
		if sectionIndex >= len(script.Core) {
			return nil, fmt.Errorf("section index %d out of range", sectionIndex)
		}
		for i := range script.Core {
			if sectionIndex >= 0 && i != sectionIndex {
				continue
			}
			if patched, ok := replaceIn(script.Core[i].Questions); ok {
				core := make([]models.Section, len(script.Core))
				copy(core, script.Core)
				core[i].Questions = patched
				updated.Core = core
				return &updated, nil
			}
		}
	default:
		return nil, fmt.Errorf("unknown group %q", group)
	}

	return nil, fmt.Errorf("%w: %s in group %s", ErrQuestionNotFound, questionID, group)
}
