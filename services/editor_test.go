package services

import (
	"errors"
	"testing"

	"scriptstudio/models"
)

func editorScript() *models.Script {
	return &models.Script{
		Opening: []models.Question{
			{ID: "o1", Text: "original opening"},
		},
		Core: []models.Section{
			{Topic: "A", Questions: []models.Question{{ID: "a1", Text: "core a"}}},
			{Topic: "B", Questions: []models.Question{{ID: "b1", Text: "core b"}}},
		},
		Closing: []models.Question{
			{ID: "z1", Text: "original closing"},
		},
	}
}

func TestUpdateQuestionTextOpening(t *testing.T) {
	script := editorScript()

	updated, err := UpdateQuestionText(script, models.GroupOpening, -1, "o1", "edited")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Opening[0].Text != "edited" {
		t.Errorf("Expected edited text, got %q", updated.Opening[0].Text)
	}
	// The input script is never mutated.
	if script.Opening[0].Text != "original opening" {
		t.Errorf("Input script was mutated: %q", script.Opening[0].Text)
	}
}

func TestUpdateQuestionTextSharesUntouchedStructure(t *testing.T) {
	script := editorScript()

	updated, err := UpdateQuestionText(script, models.GroupCore, 1, "b1", "edited")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Core[1].Questions[0].Text != "edited" {
		t.Errorf("Expected edited text, got %q", updated.Core[1].Questions[0].Text)
	}
	if script.Core[1].Questions[0].Text != "core b" {
		t.Errorf("Input section was mutated: %q", script.Core[1].Questions[0].Text)
	}

	// Slices off the edit path are shared, not copied.
	if &updated.Opening[0] != &script.Opening[0] {
		t.Error("Opening slice was copied needlessly")
	}
	if &updated.Core[0].Questions[0] != &script.Core[0].Questions[0] {
		t.Error("Untouched core section was copied needlessly")
	}
}

func TestUpdateQuestionTextSearchesAllSections(t *testing.T) {
	script := editorScript()

	// Negative section index searches by id across sections.
	updated, err := UpdateQuestionText(script, models.GroupCore, -1, "b1", "found it")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Core[1].Questions[0].Text != "found it" {
		t.Errorf("Expected edit in second section, got %+v", updated.Core[1])
	}
}

func TestUpdateQuestionTextNotFound(t *testing.T) {
	script := editorScript()

	_, err := UpdateQuestionText(script, models.GroupClosing, -1, "missing", "x")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}

	// Wrong group: the id exists, but not where the edit points.
	_, err = UpdateQuestionText(script, models.GroupOpening, -1, "z1", "x")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound for wrong group, got %v", err)
	}
}

func TestUpdateQuestionTextBadSection(t *testing.T) {
	script := editorScript()

	if _, err := UpdateQuestionText(script, models.GroupCore, 7, "a1", "x"); err == nil {
		t.Error("Expected error for out-of-range section index")
	}
	if _, err := UpdateQuestionText(script, "sidebar", -1, "a1", "x"); err == nil {
		t.Error("Expected error for unknown group")
	}
}
