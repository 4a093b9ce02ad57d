package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/foxseedlab/rollalign/external/config"
	outputimpl "github.com/foxseedlab/rollalign/external/output"
	"github.com/foxseedlab/rollalign/external/rollcsv"
	"github.com/foxseedlab/rollalign/external/srt"
	webhookimpl "github.com/foxseedlab/rollalign/external/webhook"
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/pipeline"
	"github.com/foxseedlab/rollalign/internal/timestamp"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func main() {
	cfg := mustLoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var offset string

	cmd := &cobra.Command{
		Use:          "rollalign <dice_rolls> <transcript>",
		Short:        "Align dice rolls to transcripts",
		Long:         "Pair every dice roll with the transcript captions spoken shortly before it (context) and after it (consequence).",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := timestamp.Parse(offset)
			if err != nil {
				return fmt.Errorf("invalid --offset value: %w", err)
			}
			cfg.RollOffset = parsed
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation failed: %w", err)
			}
			initLogger(cfg, cmd.ErrOrStderr())

			runner, err := do.Invoke[*pipeline.Runner](setupDI(cfg))
			if err != nil {
				return fmt.Errorf("failed to resolve pipeline runner: %w", err)
			}
			_, err = runner.Run(cmd.Context(), pipeline.Input{
				DiceRollsPath:  args[0],
				TranscriptPath: args[1],
				Stdout:         cmd.OutOrStdout(),
			})
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.WindowSeconds, "window", "w", cfg.WindowSeconds, "seconds of dialogue to take before and after each roll")
	flags.StringVarP(&offset, "offset", "o", cfg.RollOffset.String(), "HH:MM:SS subtracted from every dice roll timestamp")
	flags.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output format: jsonl, json, or yaml")
	flags.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "output file, or - for stdout")
	flags.BoolVar(&cfg.StrictOrder, "strict-order", cfg.StrictOrder, "fail when captions or rolls are not in time order")

	return cmd
}

// initLogger writes to stderr: stdout carries the annotations.
func initLogger(cfg *config.Config, w io.Writer) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	srt.RegisterDI(injector)
	rollcsv.RegisterDI(injector)
	outputimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	pipeline.RegisterDI(injector)

	return injector
}
