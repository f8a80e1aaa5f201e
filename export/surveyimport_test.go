package export

import (
	"strings"
	"testing"

	"scriptstudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likertOptions() []string {
	return []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}
}

func TestSurveyImport_LikertAndFreeText(t *testing.T) {
	script := &models.Script{
		Core: []models.Section{
			{Topic: "Experience", Questions: []models.Question{
				{ID: "q1", Text: "Rate ease of use", Type: models.QuestionTypeLikertScale, Options: likertOptions()},
				{ID: "q2", Text: "Describe your experience", Type: models.QuestionTypeFreeText},
			}},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)
	lines := strings.Split(out, "\n")

	require.Equal(t, "[[Block:Core Questions: Experience]]", lines[0])
	require.Equal(t, "MC1. Rate ease of use", lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, likertOptions(), lines[3:8])
	require.Equal(t, "", lines[8])
	require.Equal(t, "TE1. Describe your experience", lines[9])
	require.Equal(t, "", lines[10])

	// FreeText never gets an options block.
	assert.NotContains(t, out, "TE1. Describe your experience\n\n"+likertOptions()[0])
}

func TestSurveyImport_MultipleAnswerMarker(t *testing.T) {
	script := &models.Script{
		Opening: []models.Question{
			{ID: "m1", Text: "Which features do you use?", Type: models.QuestionTypeMultipleChoice, Options: []string{"A", "B", "C"}},
			{ID: "s1", Text: "Pick your favorite", Type: models.QuestionTypeSingleChoice, Options: []string{"A", "B"}},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{
		"[[Block:Opening / Warm-up Questions]]",
		"MC1. Which features do you use?",
		"[[MultipleAnswer]]",
		"",
		"A",
		"B",
		"C",
		"",
		"MC2. Pick your favorite",
		"",
		"A",
		"B",
		"",
	}, lines[:13])

	// Exactly one marker: MultipleChoice yes, SingleChoice no.
	assert.Equal(t, 1, strings.Count(out, "[[MultipleAnswer]]"))
}

func TestSurveyImport_CountersPersistAcrossBlocks(t *testing.T) {
	script := &models.Script{
		Opening: []models.Question{
			{ID: "1", Text: "Open feelings?", Type: models.QuestionTypeFreeText},
		},
		Core: []models.Section{
			{Topic: "One", Questions: []models.Question{
				{ID: "2", Text: "Choice one", Type: models.QuestionTypeSingleChoice, Options: []string{"a", "b"}},
			}},
			{Topic: "Two", Questions: []models.Question{
				{ID: "3", Text: "Choice two", Type: models.QuestionTypeLikertScale, Options: []string{"1", "2"}},
				{ID: "4", Text: "More words", Type: models.QuestionTypeFreeText},
			}},
		},
		Closing: []models.Question{
			{ID: "5", Text: "Final choice", Type: models.QuestionTypeMultipleChoice, Options: []string{"x"}},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)

	// MC counter runs across core sections into closing; TE counter is
	// independent of it.
	assert.Contains(t, out, "MC1. Choice one")
	assert.Contains(t, out, "MC2. Choice two")
	assert.Contains(t, out, "MC3. Final choice")
	assert.Contains(t, out, "TE1. Open feelings?")
	assert.Contains(t, out, "TE2. More words")
	assert.NotContains(t, out, "MC4.")
	assert.NotContains(t, out, "TE3.")
}

func TestSurveyImport_UntypedQuestionDropped(t *testing.T) {
	script := &models.Script{
		Opening: []models.Question{
			{ID: "u1", Text: "I have no type"},
			{ID: "t1", Text: "I am typed", Type: models.QuestionTypeFreeText},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)

	// The untyped question is skipped entirely and does not consume a
	// counter.
	assert.NotContains(t, out, "I have no type")
	assert.Contains(t, out, "TE1. I am typed")
}

func TestSurveyImport_EmptyGroupEmitsNoBlock(t *testing.T) {
	script := &models.Script{
		Closing: []models.Question{
			{ID: "c1", Text: "Anything else?", Type: models.QuestionTypeFreeText},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)
	assert.NotContains(t, out, "[[Block:Opening")
	assert.NotContains(t, out, "[[Block:Follow-ups")
	assert.Contains(t, out, "[[Block:Closing / Wrap-up]]")
}

func TestSurveyImport_AllUntypedGroupKeepsItsMarker(t *testing.T) {
	// A group that has questions, all of them untyped, still emits its
	// block marker; only a group with no questions at all is suppressed.
	// The questions themselves are dropped without consuming a counter.
	script := &models.Script{
		Opening: []models.Question{
			{ID: "u1", Text: "untyped one"},
			{ID: "u2", Text: "untyped two"},
		},
		Closing: []models.Question{
			{ID: "t1", Text: "typed", Type: models.QuestionTypeFreeText},
		},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)

	assert.Contains(t, out, "[[Block:Opening / Warm-up Questions]]")
	assert.NotContains(t, out, "untyped")
	assert.Contains(t, out, "TE1. typed")
	assert.Equal(t, "[[Block:Opening / Warm-up Questions]]\n\n[[Block:Closing / Wrap-up]]\nTE1. typed\n\n", out)
}

func TestSurveyImport_BlockOrder(t *testing.T) {
	script := &models.Script{
		Opening: []models.Question{{ID: "1", Text: "o", Type: models.QuestionTypeFreeText}},
		Core: []models.Section{
			{Topic: "First", Questions: []models.Question{{ID: "2", Text: "c1", Type: models.QuestionTypeFreeText}}},
			{Topic: "Second", Questions: []models.Question{{ID: "3", Text: "c2", Type: models.QuestionTypeFreeText}}},
		},
		FollowUps: []models.Question{{ID: "4", Text: "f", Type: models.QuestionTypeFreeText}},
		Closing:   []models.Question{{ID: "5", Text: "z", Type: models.QuestionTypeFreeText}},
		IsQuestionnaire: true,
	}

	out := SurveyImport(script)
	markers := []string{
		"[[Block:Opening / Warm-up Questions]]",
		"[[Block:Core Questions: First]]",
		"[[Block:Core Questions: Second]]",
		"[[Block:Follow-ups / Probes]]",
		"[[Block:Closing / Wrap-up]]",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(out, marker)
		require.Greater(t, idx, last, "marker %s out of order", marker)
		last = idx
	}
}
