package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/timestamp"
)

type envConfig struct {
	Env                  string              `env:"ENV" envDefault:"production"`
	WindowSeconds        int                 `env:"WINDOW_SECONDS" envDefault:"10"`
	RollOffset           timestamp.Timestamp `env:"ROLL_OFFSET" envDefault:"00:00:00"`
	OutputFormat         string              `env:"OUTPUT_FORMAT" envDefault:"jsonl"`
	OutputPath           string              `env:"OUTPUT_PATH" envDefault:"-"`
	StrictOrder          bool                `env:"STRICT_ORDER" envDefault:"true"`
	RollTimeColumn       string              `env:"ROLL_TIME_COLUMN" envDefault:"Time"`
	RollTypeColumn       string              `env:"ROLL_TYPE_COLUMN" envDefault:"Type of Roll"`
	RollValueColumn      string              `env:"ROLL_VALUE_COLUMN" envDefault:"Total Value"`
	AnnotationWebhookURL string              `env:"ANNOTATION_WEBHOOK_URL"`
}

// Load reads the environment. The result is not validated yet because command-line flags
// may still override it; call Validate once they are applied.
func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid: %w", err)
	}

	return &internalconfig.Config{
		Env:                  raw.Env,
		WindowSeconds:        raw.WindowSeconds,
		RollOffset:           raw.RollOffset,
		OutputFormat:         raw.OutputFormat,
		OutputPath:           raw.OutputPath,
		StrictOrder:          raw.StrictOrder,
		RollTimeColumn:       raw.RollTimeColumn,
		RollTypeColumn:       raw.RollTypeColumn,
		RollValueColumn:      raw.RollValueColumn,
		AnnotationWebhookURL: raw.AnnotationWebhookURL,
	}, nil
}
