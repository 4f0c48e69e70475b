package metrics

import (
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
)

// NopMetrics discards every observation. Used by the CLI one-shot commands and in tests.
type NopMetrics struct{}

var _ contract.Metrics = (*NopMetrics)(nil)

func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) ObserveResolution(_ string, _ *roster.Result) {}

func (n *NopMetrics) AddGeneratedSlots(_ string, _ int) {}

func (n *NopMetrics) AddLeaveTransitions(_ string, _ int64) {}

func (n *NopMetrics) IncCleanupRun(_ error) {}
