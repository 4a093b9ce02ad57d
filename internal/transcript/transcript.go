package transcript

import (
	"context"

	"github.com/foxseedlab/rollalign/internal/timestamp"
)

// Caption is one subtitle block. Text is already flattened to a single line.
type Caption struct {
	Index int
	Start timestamp.Timestamp
	End   timestamp.Timestamp
	Text  string
}

// Loader reads captions ordered by Start.
type Loader interface {
	Load(ctx context.Context, path string) ([]Caption, error)
}
