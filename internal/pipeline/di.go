package pipeline

import (
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/foxseedlab/rollalign/internal/output"
	"github.com/foxseedlab/rollalign/internal/transcript"
	"github.com/foxseedlab/rollalign/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		transcripts := do.MustInvoke[transcript.Loader](i)
		rolls := do.MustInvoke[diceroll.Loader](i)
		newWriter := do.MustInvoke[output.WriterFactory](i)
		wh := do.MustInvoke[webhook.Sender](i)
		return NewRunner(cfg, transcripts, rolls, newWriter, wh), nil
	})
}
