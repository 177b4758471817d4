package metrics

import (
	"time"

	"keycard/internal/domain/service"
)

var _ service.AuthMetrics = Noop{}

// Noop discards every observation.
type Noop struct{}

func NewNoop() service.AuthMetrics {
	return Noop{}
}

func (Noop) RecordSignup(string)              {}
func (Noop) RecordSignin(string)              {}
func (Noop) ObserveKDF(string, time.Duration) {}
