package services

import (
	"context"
	"encoding/json"
	"fmt"

	"scriptstudio/models"
)

// buildRefinementPrompt wraps the current script and the user's free-text
// instruction in the same fixed frame the generator uses. The model returns
// a full replacement script, never a patch.
func buildRefinementPrompt(params models.ResearchParams, current *models.Script, instruction string) (string, error) {
	currentJSON, err := json.Marshal(scriptPayload{
		Opening:   current.Opening,
		Core:      current.Core,
		FollowUps: current.FollowUps,
		Closing:   current.Closing,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal current script: %w", err)
	}

	return fmt.Sprintf(
		`Act as a senior user researcher revising an existing research script.

Research type: %s
Target audience: %s
Research goal: %s
Product description: %s
Product stage: %s
Tone: %s

Current script (JSON):
%s

Revision instruction from the researcher:
%s

Rewrite the script applying the instruction. Keep the ids of questions you leave unchanged.
Return the COMPLETE revised script in the same JSON structure as the current script, with all four top-level fields ("opening", "core", "followUps", "closing") present.

Provide ONLY the JSON output without additional text or markdown formatting.`,
		params.ResearchType, params.TargetAudience, params.Goal,
		params.Description, params.ProductStage, params.Tone,
		string(currentJSON), instruction,
	), nil
}

// RefineScript sends the current script plus a refinement instruction to the
// model and returns the replacement script. Failure modes match generation.
func RefineScript(ctx context.Context, params models.ResearchParams, current *models.Script, instruction string) (*models.Script, error) {
	prompt, err := buildRefinementPrompt(params, current, instruction)
	if err != nil {
		return nil, err
	}

	response, err := generateModelText(ctx, prompt, params.Attachments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if response == "" {
		return nil, fmt.Errorf("%w: empty model output", ErrMalformedResponse)
	}

	refined, err := parseScriptResponse(response, current.IsQuestionnaire)
	if err != nil {
		return nil, err
	}
	refined.ID = current.ID
	refined.CreatedAt = current.CreatedAt
	return refined, nil
}
