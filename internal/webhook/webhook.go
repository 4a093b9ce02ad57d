package webhook

import "context"

const AnnotationWebhookSchemaVersion = "2026-10-18"

type Sender interface {
	SendAnnotations(ctx context.Context, payload AnnotationWebhookPayload) error
}

type AnnotationWebhookPayload struct {
	SchemaVersion     string                    `json:"schema_version"`
	GeneratedAt       string                    `json:"generated_at"`
	DiceRollsFile     string                    `json:"dice_rolls_file"`
	TranscriptFile    string                    `json:"transcript_file"`
	WindowSeconds     int                       `json:"window_seconds"`
	RollOffset        string                    `json:"roll_offset"`
	RollCount         int                       `json:"roll_count"`
	CriticalCount     int                       `json:"critical_count"`
	CaptionsConsumed  int                       `json:"captions_consumed"`
	CaptionsDiscarded int                       `json:"captions_discarded"`
	CaptionsRemaining int                       `json:"captions_remaining"`
	Annotations       []AnnotationWebhookRecord `json:"annotations"`
}

type AnnotationWebhookRecord struct {
	Context     string `json:"context"`
	Consequence string `json:"consequence"`
	RollType    string `json:"roll_type"`
	Value       int    `json:"value"`
	Critical    bool   `json:"critical"`
}
