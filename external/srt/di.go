package srt

import (
	"github.com/foxseedlab/rollalign/internal/transcript"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (transcript.Loader, error) {
		return NewFileReader(), nil
	})
}
