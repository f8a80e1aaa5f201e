package models

// Attachment is a user-supplied reference image forwarded to the model as
// inline data.
type Attachment struct {
	Data     []byte `json:"data" bson:"data"`
	MIMEType string `json:"mimeType" bson:"mimeType"`
}

// ResearchParams is the research-parameter record collected by the intake
// form. It drives both generation and refinement.
type ResearchParams struct {
	ResearchType   string       `json:"researchType" bson:"researchType"`
	TargetAudience string       `json:"targetAudience" bson:"targetAudience"`
	Goal           string       `json:"goal" bson:"goal"`
	Description    string       `json:"description" bson:"description"`
	Attachments    []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
	ProductStage   string       `json:"productStage" bson:"productStage"`
	Tone           string       `json:"tone" bson:"tone"`
}
