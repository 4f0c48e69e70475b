package domain

import "time"

// DefaultMaxIterations caps the number of conflict resolution passes per roster.
const DefaultMaxIterations = 50

// DutyWeekDays is the length of one duty window starting on the slot's Monday.
const DutyWeekDays = 7

// DateLayout is the storage and display format of civil dates.
const DateLayout = "2006-01-02"

const (
	// DefaultCleanupInterval is how often expired pending leave requests are swept.
	DefaultCleanupInterval = time.Hour
	// DefaultCleanupRetryDelay is the wait after a failed sweep.
	DefaultCleanupRetryDelay = 5 * time.Minute
	// DefaultCanceledRetentionDays is the age after which canceled requests may be purged.
	DefaultCanceledRetentionDays = 30
)
