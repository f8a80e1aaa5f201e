package services

import (
	"context"
	"errors"
	"strings"

	"scriptstudio/config"
	"scriptstudio/models"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Global Gemini client instance
var geminiClient *genai.Client
var geminiModel = defaultGeminiModel

// InitScriptService initializes the Gemini client using the API key from the config
func InitScriptService(cfg *config.Config) {
	var err error
	geminiClient, err = initGemini(cfg.Gemini.ApiKey)
	if err != nil {
		panic("Failed to initialize Gemini client: " + err.Error())
	}
	if cfg.Gemini.Model != "" {
		geminiModel = cfg.Gemini.Model
	}
}

func initGemini(apiKey string) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{}
	if apiKey != "" {
		clientConfig.APIKey = apiKey
	}
	return genai.NewClient(context.Background(), clientConfig)
}

// generateModelText sends a prompt, plus any reference images as inline
// data, and returns the model's text output with code fences stripped.
func generateModelText(ctx context.Context, prompt string, attachments []models.Attachment) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, a := range attachments {
		if len(a.Data) == 0 {
			continue
		}
		parts = append(parts, genai.NewPartFromBytes(a.Data, a.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := geminiClient.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
