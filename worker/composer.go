package worker

import (
	"github.com/logingood/snmp-go-querier/models"
)

type StepFunc func(*models.DeviceScan) error
type Step func(StepFunc) StepFunc

// Compose chains steps around a terminal StepFunc; the last step listed
// runs first.
func Compose(f StepFunc, steps ...Step) StepFunc {
	for _, step := range steps {
		f = step(f)
	}

	return f
}
