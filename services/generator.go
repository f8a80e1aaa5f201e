package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"scriptstudio/models"

	"github.com/google/uuid"
)

// ErrGenerationFailed covers network or service failures while talking to
// the model; ErrMalformedResponse covers a reply that is not the expected
// script JSON (missing one of the four top-level groups, or not JSON at
// all).
var (
	ErrGenerationFailed  = errors.New("generation failed")
	ErrMalformedResponse = errors.New("malformed response")
)

// scriptPayload mirrors the JSON contract the prompt asks the model for.
type scriptPayload struct {
	Opening   []models.Question `json:"opening"`
	Core      []models.Section  `json:"core"`
	FollowUps []models.Question `json:"followUps"`
	Closing   []models.Question `json:"closing"`
}

// buildScriptPrompt assembles the fixed generation template from the form
// fields. There is no adaptive prompt logic; the research parameters are
// slotted into a constant frame.
func buildScriptPrompt(params models.ResearchParams, isQuestionnaire bool) string {
	modeInstructions := `Write open-ended interview questions a moderator reads aloud.
Do not include "type" or "options" fields.`
	if isQuestionnaire {
		modeInstructions = `Write questionnaire items a respondent answers unattended.
Every question must carry a "type" field, one of "FreeText", "SingleChoice", "MultipleChoice" or "LikertScale".
Choice and scale questions must carry an "options" array with the exact answer choices shown to the respondent; "FreeText" questions must not.`
	}

	attachmentNote := ""
	if len(params.Attachments) > 0 {
		attachmentNote = "Reference images of the product are attached; use them to ground the questions in the actual interface."
	}

	return fmt.Sprintf(
		`Act as a senior user researcher and write a complete research script.

Research type: %s
Target audience: %s
Research goal: %s
Product description: %s
Product stage: %s
Tone: %s

%s
%s

Required Output Format (JSON):
{
  "opening": [{"id": "string", "text": "string"}],
  "core": [{"topic": "string", "questions": [{"id": "string", "text": "string"}]}],
  "followUps": [{"id": "string", "text": "string"}],
  "closing": [{"id": "string", "text": "string"}]
}

Rules:
- "opening" holds warm-up questions, "core" holds topic-grouped sections, "followUps" holds probes, "closing" holds wrap-up questions.
- All four top-level fields are required, even when empty.
- Give every question a short unique "id".

Provide ONLY the JSON output without additional text or markdown formatting.`,
		params.ResearchType, params.TargetAudience, params.Goal,
		params.Description, params.ProductStage, params.Tone,
		modeInstructions, attachmentNote,
	)
}

// parseScriptResponse decodes the model output into a script, enforcing the
// four-group contract and normalizing what the model is sloppy about:
// missing or duplicate question ids get fresh UUIDs, and options on
// free-text or untyped questions are discarded.
func parseScriptResponse(raw string, isQuestionnaire bool) (*models.Script, error) {
	var groups map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for _, key := range []string{"opening", "core", "followUps", "closing"} {
		if _, ok := groups[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q group", ErrMalformedResponse, key)
		}
	}

	var payload scriptPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	script := &models.Script{
		Opening:         payload.Opening,
		Core:            payload.Core,
		FollowUps:       payload.FollowUps,
		Closing:         payload.Closing,
		IsQuestionnaire: isQuestionnaire,
	}
	normalizeScript(script)
	return script, nil
}

// normalizeScript assigns ids and strips options that the question type
// cannot carry. Ids must be unique across the whole document so the editor
// can address a single question unambiguously.
func normalizeScript(script *models.Script) {
	seen := make(map[string]bool)

	normalize := func(questions []models.Question) {
		for i := range questions {
			q := &questions[i]
			q.Text = strings.TrimSpace(q.Text)
			if !q.Type.HasOptions() {
				q.Options = nil
			}
			if q.ID == "" || seen[q.ID] {
				q.ID = uuid.NewString()
			}
			seen[q.ID] = true
		}
	}

	normalize(script.Opening)
	for i := range script.Core {
		normalize(script.Core[i].Questions)
	}
	normalize(script.FollowUps)
	normalize(script.Closing)
}

// GenerateScript calls the model once with the fixed template and returns
// the parsed script. There is no retry; a transport failure surfaces as
// ErrGenerationFailed and a bad reply as ErrMalformedResponse.
func GenerateScript(ctx context.Context, params models.ResearchParams, isQuestionnaire bool) (*models.Script, error) {
	prompt := buildScriptPrompt(params, isQuestionnaire)

	response, err := generateModelText(ctx, prompt, params.Attachments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if response == "" {
		return nil, fmt.Errorf("%w: empty model output", ErrMalformedResponse)
	}
	return parseScriptResponse(response, isQuestionnaire)
}
