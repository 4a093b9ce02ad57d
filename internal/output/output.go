package output

import (
	"io"

	"github.com/foxseedlab/rollalign/internal/align"
)

// Writer streams annotations in some serialization. Close flushes any trailing syntax but
// does not close the underlying io.Writer.
type Writer interface {
	Write(a align.Annotation) error
	Close() error
}

type WriterFactory func(w io.Writer, format string) (Writer, error)
