package output

import (
	"github.com/foxseedlab/rollalign/internal/output"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.ProvideValue(injector, output.WriterFactory(NewWriter))
}
