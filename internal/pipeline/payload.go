package pipeline

import (
	"path/filepath"
	"time"

	"github.com/foxseedlab/rollalign/internal/align"
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/webhook"
)

func buildAnnotationWebhookPayload(cfg *config.Config, in Input, generatedAt time.Time, res Result, annotations []align.Annotation) webhook.AnnotationWebhookPayload {
	records := make([]webhook.AnnotationWebhookRecord, 0, len(annotations))
	for _, a := range annotations {
		records = append(records, webhook.AnnotationWebhookRecord{
			Context:     a.Context,
			Consequence: a.Consequence,
			RollType:    a.RollType,
			Value:       a.Value,
			Critical:    a.Critical,
		})
	}

	return webhook.AnnotationWebhookPayload{
		SchemaVersion:     webhook.AnnotationWebhookSchemaVersion,
		GeneratedAt:       generatedAt.UTC().Format(time.RFC3339),
		DiceRollsFile:     filepath.Base(in.DiceRollsPath),
		TranscriptFile:    filepath.Base(in.TranscriptPath),
		WindowSeconds:     cfg.WindowSeconds,
		RollOffset:        cfg.RollOffset.String(),
		RollCount:         res.Stats.Rolls,
		CriticalCount:     res.CriticalCount,
		CaptionsConsumed:  res.Stats.Consumed,
		CaptionsDiscarded: res.Stats.Discarded,
		CaptionsRemaining: res.Stats.Remaining,
		Annotations:       records,
	}
}
