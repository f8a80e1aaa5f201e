package controllers

import (
	"errors"
	"log"

	"scriptstudio/db"
	"scriptstudio/export"
	"scriptstudio/models"
	"scriptstudio/services"

	"github.com/gin-gonic/gin"
)

type GenerateScriptRequest struct {
	ResearchType    string              `json:"researchType" binding:"required"`
	TargetAudience  string              `json:"targetAudience" binding:"required"`
	Goal            string              `json:"goal" binding:"required"`
	Description     string              `json:"description"`
	Attachments     []models.Attachment `json:"attachments"`
	ProductStage    string              `json:"productStage"`
	Tone            string              `json:"tone"`
	IsQuestionnaire bool                `json:"isQuestionnaire"`
}

type RefineScriptRequest struct {
	ResearchType   string              `json:"researchType"`
	TargetAudience string              `json:"targetAudience"`
	Goal           string              `json:"goal"`
	Description    string              `json:"description"`
	Attachments    []models.Attachment `json:"attachments"`
	ProductStage   string              `json:"productStage"`
	Tone           string              `json:"tone"`
	Instruction    string              `json:"instruction" binding:"required"`
}

type UpdateQuestionRequest struct {
	Group        models.GroupKey `json:"group" binding:"required"`
	SectionIndex *int            `json:"sectionIndex"`
	Text         string          `json:"text" binding:"required"`
}

type ScriptResponse struct {
	ScriptId string         `json:"scriptId"`
	Script   *models.Script `json:"script"`
}

func (r GenerateScriptRequest) params() models.ResearchParams {
	return models.ResearchParams{
		ResearchType:   r.ResearchType,
		TargetAudience: r.TargetAudience,
		Goal:           r.Goal,
		Description:    r.Description,
		Attachments:    r.Attachments,
		ProductStage:   r.ProductStage,
		Tone:           r.Tone,
	}
}

func (r RefineScriptRequest) params() models.ResearchParams {
	return models.ResearchParams{
		ResearchType:   r.ResearchType,
		TargetAudience: r.TargetAudience,
		Goal:           r.Goal,
		Description:    r.Description,
		Attachments:    r.Attachments,
		ProductStage:   r.ProductStage,
		Tone:           r.Tone,
	}
}

// modelErrorStatus maps the two generation failure modes to HTTP statuses.
func modelErrorStatus(err error) int {
	if errors.Is(err, services.ErrMalformedResponse) {
		return 502
	}
	if errors.Is(err, services.ErrGenerationFailed) {
		return 503
	}
	return 500
}

func GenerateScript(c *gin.Context) {
	var req GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	script, err := services.GenerateScript(c.Request.Context(), req.params(), req.IsQuestionnaire)
	if err != nil {
		log.Printf("Script generation failed: %v", err)
		c.JSON(modelErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	scriptID, err := db.SaveScript(c.Request.Context(), script)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to save script: " + err.Error()})
		return
	}

	c.JSON(200, ScriptResponse{ScriptId: scriptID, Script: script})
}

func RefineScript(c *gin.Context) {
	scriptID := c.Param("id")

	var req RefineScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	current, err := db.GetScript(c.Request.Context(), scriptID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	refined, err := services.RefineScript(c.Request.Context(), req.params(), current, req.Instruction)
	if err != nil {
		log.Printf("Script refinement failed: %v", err)
		c.JSON(modelErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if err := db.ReplaceScript(c.Request.Context(), scriptID, refined); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save refined script: " + err.Error()})
		return
	}

	c.JSON(200, ScriptResponse{ScriptId: scriptID, Script: refined})
}

func GetScript(c *gin.Context) {
	script, err := db.GetScript(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, ScriptResponse{ScriptId: c.Param("id"), Script: script})
}

// UpdateQuestionText applies an inline edit to a single question's text,
// addressed by group (plus optional section index) and question id.
func UpdateQuestionText(c *gin.Context) {
	scriptID := c.Param("id")
	questionID := c.Param("questionId")

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	script, err := db.GetScript(c.Request.Context(), scriptID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	sectionIndex := -1
	if req.SectionIndex != nil {
		sectionIndex = *req.SectionIndex
	}

	updated, err := services.UpdateQuestionText(script, req.Group, sectionIndex, questionID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := db.ReplaceScript(c.Request.Context(), scriptID, updated); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save edit: " + err.Error()})
		return
	}

	c.JSON(200, ScriptResponse{ScriptId: scriptID, Script: updated})
}

// ExportText returns the plain-text outline. The client places it on the
// clipboard.
func ExportText(c *gin.Context) {
	script, err := db.GetScript(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.Data(200, "text/plain; charset=utf-8", []byte(export.PlainText(script)))
}

// ExportSurvey returns the delimited survey-import file. Interview scripts
// carry no reliable question types, so only questionnaires can be exported
// in this format.
func ExportSurvey(c *gin.Context) {
	script, err := db.GetScript(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	if !script.IsQuestionnaire {
		c.JSON(409, gin.H{"error": "Survey export is only available for questionnaire scripts"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="survey.txt"`)
	c.Data(200, "text/plain; charset=utf-8", []byte(export.SurveyImport(script)))
}

func ExportPDF(c *gin.Context) {
	script, err := db.GetScript(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	data, err := export.PDF(script)
	if err != nil {
		log.Printf("PDF export failed for script %s: %v", c.Param("id"), err)
		c.JSON(500, gin.H{"error": "Failed to render PDF: " + err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="generated_script.pdf"`)
	c.Data(200, "application/pdf", data)
}
