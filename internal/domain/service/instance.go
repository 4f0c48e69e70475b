package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
)

// Options tunes the services. Zero values fall back to the package defaults.
type Options struct {
	MaxIterations         int
	CleanupInterval       time.Duration
	CleanupRetryDelay     time.Duration
	CanceledRetentionDays int
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = domain.DefaultMaxIterations
	}
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = domain.DefaultCleanupInterval
	}
	if o.CleanupRetryDelay <= 0 {
		o.CleanupRetryDelay = domain.DefaultCleanupRetryDelay
	}
	if o.CanceledRetentionDays <= 0 {
		o.CanceledRetentionDays = domain.DefaultCanceledRetentionDays
	}
	return o
}

type Instance struct {
	Roster  contract.RosterService
	Leave   contract.LeaveService
	Person  contract.PersonService
	Cleanup *cleanup
}

func NewInstance(dm contract.DataManager, metrics contract.Metrics, logger *slog.Logger, opts Options) *Instance {
	opts = opts.withDefaults()

	rosterService := newRosterService(dm, metrics, logger, opts.MaxIterations)
	leaveService := newLeaveService(dm, rosterService, metrics, logger)

	return &Instance{
		Roster:  rosterService,
		Leave:   leaveService,
		Person:  newPersonService(dm, logger),
		Cleanup: newCleanup(leaveService, metrics, logger, opts.CleanupInterval, opts.CleanupRetryDelay, opts.CanceledRetentionDays),
	}
}
