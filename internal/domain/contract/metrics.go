package contract

import "github.com/diegoclair/duty-roster/internal/domain/roster"

// Metrics records roster and leave activity.
type Metrics interface {
	ObserveResolution(trigger string, result *roster.Result)
	AddGeneratedSlots(department string, count int)
	AddLeaveTransitions(status string, count int64)
	IncCleanupRun(err error)
}
