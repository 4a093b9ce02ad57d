package rollcsv

import (
	"github.com/foxseedlab/rollalign/internal/config"
	"github.com/foxseedlab/rollalign/internal/diceroll"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (diceroll.Loader, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewFileReader(Columns{
			Time:  c.RollTimeColumn,
			Type:  c.RollTypeColumn,
			Value: c.RollValueColumn,
		}), nil
	})
}
