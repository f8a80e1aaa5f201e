package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// QuestionType classifies how a question is answered. The empty value marks
// free-form interview content that carries no answer structure at all.
type QuestionType string

const (
	QuestionTypeNone           QuestionType = ""
	QuestionTypeFreeText       QuestionType = "FreeText"
	QuestionTypeSingleChoice   QuestionType = "SingleChoice"
	QuestionTypeMultipleChoice QuestionType = "MultipleChoice"
	QuestionTypeLikertScale    QuestionType = "LikertScale"
)

// HasOptions reports whether the type carries a fixed answer-choice list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice, QuestionTypeLikertScale:
		return true
	default:
		return false
	}
}

// Question is a single elicitation item in a script. ID is unique across the
// whole document and stable across edits; it is assigned by the generation
// service, never by a renderer.
type Question struct {
	ID      string       `json:"id" bson:"id"`
	Text    string       `json:"text" bson:"text"`
	Type    QuestionType `json:"type,omitempty" bson:"type,omitempty"`
	Options []string     `json:"options,omitempty" bson:"options,omitempty"`
}

// Section groups core questions under a shared topic.
type Section struct {
	Topic     string     `json:"topic" bson:"topic"`
	Questions []Question `json:"questions" bson:"questions"`
}

// GroupKey names one of the four top-level question groups of a script.
type GroupKey string

const (
	GroupOpening   GroupKey = "opening"
	GroupCore      GroupKey = "core"
	GroupFollowUps GroupKey = "followUps"
	GroupClosing   GroupKey = "closing"
)

// Script is the full generated interview or questionnaire. Group order and
// question order are significant and preserved verbatim by every renderer.
type Script struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Opening         []Question         `json:"opening" bson:"opening"`
	Core            []Section          `json:"core" bson:"core"`
	FollowUps       []Question         `json:"followUps" bson:"followUps"`
	Closing         []Question         `json:"closing" bson:"closing"`
	IsQuestionnaire bool               `json:"isQuestionnaire" bson:"isQuestionnaire"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
}

// Title returns the display title used by page-oriented exports.
func (s *Script) Title() string {
	if s.IsQuestionnaire {
		return "User Research Questionnaire"
	}
	return "User Interview Script"
}
