package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/foxseedlab/rollalign/internal/align"
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/foxseedlab/rollalign/internal/output"
	"github.com/foxseedlab/rollalign/internal/transcript"
	"github.com/foxseedlab/rollalign/internal/webhook"
)

type Runner struct {
	cfg         *config.Config
	transcripts transcript.Loader
	rolls       diceroll.Loader
	newWriter   output.WriterFactory
	webhook     webhook.Sender
	now         func() time.Time
}

type Input struct {
	DiceRollsPath  string
	TranscriptPath string
	// Stdout receives annotations when the configured output path is "-".
	Stdout io.Writer
}

type Result struct {
	Stats         align.Stats
	CriticalCount int
}

func NewRunner(cfg *config.Config, transcripts transcript.Loader, rolls diceroll.Loader, newWriter output.WriterFactory, wh webhook.Sender) *Runner {
	return &Runner{
		cfg:         cfg,
		transcripts: transcripts,
		rolls:       rolls,
		newWriter:   newWriter,
		webhook:     wh,
		now:         time.Now,
	}
}

func (r *Runner) Run(ctx context.Context, in Input) (Result, error) {
	slog.Info("alignment requested",
		"dice_rolls", in.DiceRollsPath,
		"transcript", in.TranscriptPath,
		"window_seconds", r.cfg.WindowSeconds,
		"roll_offset", r.cfg.RollOffset.String(),
		"format", r.cfg.OutputFormat)

	captions, err := r.transcripts.Load(ctx, in.TranscriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load transcript: %w", err)
	}
	rolls, err := r.rolls.Load(ctx, in.DiceRollsPath, r.cfg.RollOffset)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load dice rolls: %w", err)
	}
	if r.cfg.StrictOrder {
		if err := align.CheckOrder(captions, rolls); err != nil {
			return Result{}, err
		}
	} else {
		slog.Debug("input order check disabled")
	}

	aligner, err := align.New(captions, rolls, r.cfg.WindowSeconds)
	if err != nil {
		return Result{}, err
	}

	dst, closeDst, err := r.openDestination(in.Stdout)
	if err != nil {
		return Result{}, err
	}
	defer closeDst()

	w, err := r.newWriter(dst, r.cfg.OutputFormat)
	if err != nil {
		return Result{}, err
	}

	annotations := make([]align.Annotation, 0, len(rolls))
	for ann := range aligner.All() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := w.Write(ann); err != nil {
			return Result{}, fmt.Errorf("failed to write annotation: %w", err)
		}
		annotations = append(annotations, ann)
	}
	if err := w.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to finish output: %w", err)
	}

	res := Result{Stats: aligner.Stats(), CriticalCount: countCritical(annotations)}
	slog.Info("alignment finished",
		"rolls", res.Stats.Rolls,
		"critical_rolls", res.CriticalCount,
		"captions", len(captions),
		"captions_consumed", res.Stats.Consumed,
		"captions_discarded", res.Stats.Discarded,
		"captions_remaining", res.Stats.Remaining)

	payload := buildAnnotationWebhookPayload(r.cfg, in, r.now(), res, annotations)
	if err := r.webhook.SendAnnotations(ctx, payload); err != nil {
		slog.Error("failed to send webhook annotations", "error", err)
	}
	return res, nil
}

func (r *Runner) openDestination(stdout io.Writer) (io.Writer, func(), error) {
	if r.cfg.WritesToStdout() {
		if stdout == nil {
			stdout = os.Stdout
		}
		return stdout, func() {}, nil
	}
	f, err := os.Create(r.cfg.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close output file", "error", err, "path", r.cfg.OutputPath)
		}
	}, nil
}

func countCritical(annotations []align.Annotation) int {
	n := 0
	for _, a := range annotations {
		if a.Critical {
			n++
		}
	}
	return n
}
