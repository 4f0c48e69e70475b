package roster

import (
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

// Build lays out a round-robin rotation for one department, one slot per person,
// each slot a week after the previous one starting at anchor.
// The result is unsaved and unresolved.
func Build(dept entity.Department, names []string, anchor time.Time) []*entity.RosterSlot {
	n := len(names)
	if n == 0 {
		return nil
	}
	anchor = Date(anchor)

	slots := make([]*entity.RosterSlot, 0, n)
	for i := 0; i < n; i++ {
		slot := &entity.RosterSlot{
			Department: dept,
			WeekStart:  anchor.AddDate(0, 0, domain.DutyWeekDays*i),
		}

		switch dept {
		case entity.DepartmentConfig:
			slot.Primary = names[i]
			slot.Backup = names[(i+1)%n]
		case entity.DepartmentMonitoring:
			slot.Kanban = names[i]
			slot.Monitoring = names[(i+1)%n]
			slot.Backup = names[(i+2)%n]
			// fewer than three people cannot fill three distinct roles
			if entity.SameName(slot.Kanban, slot.Monitoring) ||
				entity.SameName(slot.Kanban, slot.Backup) ||
				entity.SameName(slot.Monitoring, slot.Backup) {
				continue
			}
		default:
			return nil
		}

		slots = append(slots, slot)
	}

	return slots
}

// Names extracts full names in directory order.
func Names(persons []*entity.Person) []string {
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		names = append(names, p.FullName)
	}
	return names
}
