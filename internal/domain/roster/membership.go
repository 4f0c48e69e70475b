package roster

import (
	"sort"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

// Rename rewrites every role naming oldName to newName across all slots.
// It returns the slots it touched. This is the only place roster names are rewritten.
func Rename(slots []*entity.RosterSlot, oldName, newName string) []*entity.RosterSlot {
	if oldName == newName || newName == "" {
		return nil
	}
	return rewrite(slots, oldName, newName)
}

// Remove blanks every role held by name in slots. Callers scope the removal by
// passing only the slots of one department.
func Remove(slots []*entity.RosterSlot, name string) []*entity.RosterSlot {
	return rewrite(slots, name, "")
}

func rewrite(slots []*entity.RosterSlot, from, to string) []*entity.RosterSlot {
	var changed []*entity.RosterSlot
	for _, slot := range slots {
		touched := false
		for _, role := range slot.Department.Roles() {
			if entity.SameName(slot.Role(role), from) {
				slot.SetRole(role, to)
				touched = true
			}
		}
		if touched {
			changed = append(changed, slot)
		}
	}
	return changed
}

// Integration is the outcome of moving a person into a department's rotation.
type Integration struct {
	Created  *entity.RosterSlot
	Modified []*entity.RosterSlot
}

// Integrate shifts name into the existing rotation of dept. A placeholder slot is
// created the day after the latest slot and the earliest slot(s) are rewritten.
// With no slots in dept nothing happens and nil is returned.
func Integrate(dept entity.Department, slots []*entity.RosterSlot, name string) *Integration {
	deptSlots := make([]*entity.RosterSlot, 0, len(slots))
	for _, s := range slots {
		if s.Department == dept {
			deptSlots = append(deptSlots, s)
		}
	}
	if len(deptSlots) == 0 || name == "" {
		return nil
	}

	sort.SliceStable(deptSlots, func(i, j int) bool {
		return deptSlots[i].WeekStart.Before(deptSlots[j].WeekStart)
	})

	first := deptSlots[0]
	created := &entity.RosterSlot{
		Department: dept,
		WeekStart:  latest(deptSlots).AddDate(0, 0, 1),
	}
	out := &Integration{Created: created, Modified: []*entity.RosterSlot{first}}

	switch dept {
	case entity.DepartmentConfig:
		created.Primary = first.Primary
		created.Backup = name
		first.Primary = name
	case entity.DepartmentMonitoring:
		created.Kanban = first.Kanban
		created.Monitoring = first.Monitoring
		created.Backup = name
		first.Kanban = first.Monitoring
		first.Monitoring = name
		if len(deptSlots) > 1 {
			second := deptSlots[1]
			second.Kanban = name
			out.Modified = append(out.Modified, second)
		}
	default:
		return nil
	}

	return out
}

func latest(slots []*entity.RosterSlot) time.Time {
	var last time.Time
	for _, s := range slots {
		if s.WeekStart.After(last) {
			last = s.WeekStart
		}
	}
	return last
}

// CheckDistinct reports every slot where one person holds more than one role.
func CheckDistinct(slots []*entity.RosterSlot) []Diagnostic {
	var diags []Diagnostic
	for _, slot := range slots {
		if dup := duplicateAssignee(slot); dup != "" {
			diags = append(diags, Diagnostic{
				Kind:       KindDuplicate,
				Department: slot.Department,
				Date:       slot.WeekStart,
				From:       dup,
				Reason:     "role distinctness",
			})
		}
	}
	return diags
}
