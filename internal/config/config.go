package config

import (
	"fmt"
	"slices"

	"github.com/foxseedlab/rollalign/internal/timestamp"
)

const (
	OutputFormatJSONL = "jsonl"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// StdoutPath selects standard output instead of a file.
	StdoutPath = "-"
)

var supportedOutputFormats = []string{OutputFormatJSONL, OutputFormatJSON, OutputFormatYAML}

type Config struct {
	Env                  string
	WindowSeconds        int
	RollOffset           timestamp.Timestamp
	OutputFormat         string
	OutputPath           string
	StrictOrder          bool
	RollTimeColumn       string
	RollTypeColumn       string
	RollValueColumn      string
	AnnotationWebhookURL string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.WindowSeconds < 0 {
		return fmt.Errorf("WINDOW_SECONDS must not be negative, got %d", c.WindowSeconds)
	}
	if !slices.Contains(supportedOutputFormats, c.OutputFormat) {
		return fmt.Errorf("OUTPUT_FORMAT must be one of %v, got %q", supportedOutputFormats, c.OutputFormat)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "OUTPUT_FORMAT", value: c.OutputFormat},
		{name: "OUTPUT_PATH", value: c.OutputPath},
		{name: "ROLL_TIME_COLUMN", value: c.RollTimeColumn},
		{name: "ROLL_TYPE_COLUMN", value: c.RollTypeColumn},
		{name: "ROLL_VALUE_COLUMN", value: c.RollValueColumn},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) WritesToStdout() bool {
	return c.OutputPath == StdoutPath
}
