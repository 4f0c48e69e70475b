package roster

import (
	"strings"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type span struct {
	start time.Time
	end   time.Time
}

// LeaveIndex answers whether a person is on approved leave during a duty week.
// It is a snapshot; build a new one per resolution call.
type LeaveIndex struct {
	byName map[string][]span
}

func NewLeaveIndex(intervals []entity.LeaveInterval) *LeaveIndex {
	idx := &LeaveIndex{byName: make(map[string][]span, len(intervals))}
	for _, in := range intervals {
		key := nameKey(in.PersonName)
		if key == "" {
			continue
		}
		idx.byName[key] = append(idx.byName[key], span{start: Date(in.Start), end: Date(in.End)})
	}
	return idx
}

// IsOnLeave reports whether any interval of name overlaps [weekStart, weekStart+6].
func (idx *LeaveIndex) IsOnLeave(name string, weekStart time.Time) bool {
	if idx == nil {
		return false
	}
	spans := idx.byName[nameKey(name)]
	if len(spans) == 0 {
		return false
	}
	start := Date(weekStart)
	end := start.AddDate(0, 0, domain.DutyWeekDays-1)
	for _, s := range spans {
		if !s.start.After(end) && !s.end.Before(start) {
			return true
		}
	}
	return false
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
