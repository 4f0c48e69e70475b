package roster

import (
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveFor(name string, from, to time.Time) entity.LeaveInterval {
	return entity.LeaveInterval{PersonName: name, Start: from, End: to}
}

func assignmentsByPerson(slots []*entity.RosterSlot) map[string]int {
	counts := make(map[string]int)
	for _, s := range slots {
		for _, role := range s.Department.Roles() {
			if name := s.Role(role); name != "" {
				counts[strings.ToLower(name)]++
			}
		}
	}
	return counts
}

func totalAssignments(slots []*entity.RosterSlot) int {
	n := 0
	for _, s := range slots {
		n += s.Assignments()
	}
	return n
}

func TestResolver_SwapsWithAnotherWeek(t *testing.T) {
	names := []string{"A", "B", "C"}
	slots := Build(entity.DepartmentConfig, names, day(time.October, 19))
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("A", day(time.October, 20), day(time.October, 22))})

	res := NewResolver(domain.DefaultMaxIterations).Resolve(slots, Directory{entity.DepartmentConfig: names}, leaves)

	require.True(t, res.Converged)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 2, res.Iterations)

	// B already backs up week 0, so C takes primary and A covers C's backup week.
	assert.Equal(t, "C", slots[0].Primary)
	assert.Equal(t, "B", slots[0].Backup)
	assert.Equal(t, "B", slots[1].Primary)
	assert.Equal(t, "A", slots[1].Backup)
	assert.False(t, leaves.IsOnLeave(slots[0].Primary, slots[0].WeekStart))

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, KindSwap, d.Kind)
	assert.Equal(t, entity.RolePrimary, d.Role)
	assert.Equal(t, "A", d.From)
	assert.Equal(t, "C", d.To)
	assert.Equal(t, "[2026-10-19] config primary SWAP: A <-> C (on leave)", d.String())

	assert.ElementsMatch(t, []*entity.RosterSlot{slots[0], slots[1]}, res.Changed)
}

func TestResolver_ReplaceWhenNoSwapTarget(t *testing.T) {
	names := []string{"A", "B", "C"}
	slot := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "A", Backup: "C"}
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("a", day(time.October, 19), day(time.October, 25))})

	res := NewResolver(0).Resolve([]*entity.RosterSlot{slot}, Directory{entity.DepartmentConfig: names}, leaves)

	require.True(t, res.Converged)
	assert.Equal(t, "B", slot.Primary)
	assert.Equal(t, "C", slot.Backup)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, KindReplace, res.Diagnostics[0].Kind)
	assert.Equal(t, "[2026-10-19] config primary REPLACE: A -> B (on leave)", res.Diagnostics[0].String())
}

func TestResolver_Unresolved(t *testing.T) {
	names := []string{"A", "B"}
	slot := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "A", Backup: "B"}
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("A", day(time.October, 19), day(time.October, 19))})

	res := NewResolver(domain.DefaultMaxIterations).Resolve([]*entity.RosterSlot{slot}, Directory{entity.DepartmentConfig: names}, leaves)

	assert.False(t, res.Converged)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, "A", slot.Primary, "incumbent stays when nobody can cover")
	assert.Empty(t, res.Changed)

	unresolved := res.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, KindUnresolved, unresolved[0].Kind)
	assert.Equal(t, entity.RolePrimary, unresolved[0].Role)
	assert.True(t, unresolved[0].Warning())
}

func TestResolver_IdempotentOnConflictFreeRoster(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	dir := Directory{entity.DepartmentConfig: names, entity.DepartmentMonitoring: names}
	slots := append(
		Build(entity.DepartmentConfig, names, day(time.October, 19)),
		Build(entity.DepartmentMonitoring, names, day(time.October, 19))...,
	)
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("D", day(time.October, 26), day(time.October, 30))})
	resolver := NewResolver(domain.DefaultMaxIterations)

	first := resolver.Resolve(slots, dir, leaves)
	require.True(t, first.Converged)
	require.NotEmpty(t, first.Changed)

	snapshot := make([]entity.RosterSlot, len(slots))
	for i, s := range slots {
		snapshot[i] = *s
	}

	second := resolver.Resolve(slots, dir, leaves)
	assert.True(t, second.Converged)
	assert.Equal(t, 1, second.Iterations)
	assert.Empty(t, second.Changed)
	assert.Empty(t, second.Diagnostics)
	for i, s := range slots {
		assert.Equal(t, snapshot[i], *s)
	}
}

func TestResolver_SwapKeepsAssignmentCounts(t *testing.T) {
	names := []string{"A", "B", "C"}
	slots := Build(entity.DepartmentConfig, names, day(time.October, 19))
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("A", day(time.October, 19), day(time.October, 19))})

	before := assignmentsByPerson(slots)
	total := totalAssignments(slots)

	res := NewResolver(0).Pass(slots, Directory{entity.DepartmentConfig: names}, leaves)

	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, KindSwap, res.Diagnostics[0].Kind)
	assert.Equal(t, before, assignmentsByPerson(slots))
	assert.Equal(t, total, totalAssignments(slots))
}

func TestResolver_DistinctWhenConverged(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	dir := Directory{entity.DepartmentConfig: names, entity.DepartmentMonitoring: names}
	anchor := day(time.October, 19)

	for _, absent := range names {
		for week := 0; week < len(names); week++ {
			slots := append(
				Build(entity.DepartmentConfig, names, anchor),
				Build(entity.DepartmentMonitoring, names, anchor)...,
			)
			start := anchor.AddDate(0, 0, 7*week)
			leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor(absent, start, start.AddDate(0, 0, 2))})

			res := NewResolver(domain.DefaultMaxIterations).Resolve(slots, dir, leaves)
			if !res.Converged {
				continue
			}
			assert.Empty(t, CheckDistinct(slots), "%s absent in week %d", absent, week)
			for _, s := range slots {
				for _, role := range s.Department.Roles() {
					assert.False(t, leaves.IsOnLeave(s.Role(role), s.WeekStart))
				}
			}
		}
	}
}

func TestResolver_StopsWhenOnlyKnownDuplicatesRemain(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	slots := Build(entity.DepartmentMonitoring, names, day(time.October, 19))
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("B", day(time.October, 19), day(time.October, 19))})

	res := NewResolver(50).Resolve(slots, Directory{entity.DepartmentMonitoring: names}, leaves)

	// D replaces B in week 0 and B is swapped into D's backup role in week 1,
	// where B already holds kanban. No later pass can repair that.
	assert.Equal(t, []string{"A", "D", "C"}, []string{slots[0].Kanban, slots[0].Monitoring, slots[0].Backup})
	assert.Equal(t, []string{"B", "C", "B"}, []string{slots[1].Kanban, slots[1].Monitoring, slots[1].Backup})

	assert.Equal(t, 2, res.Iterations)
	assert.False(t, res.Exhausted)
	assert.False(t, res.Converged)
	assert.Len(t, res.Changed, 2)

	var duplicates int
	for _, d := range res.Diagnostics {
		assert.NotEqual(t, KindExhausted, d.Kind)
		if d.Kind == KindDuplicate {
			duplicates++
		}
	}
	assert.Equal(t, 2, duplicates, "reported once when raised and once by the final pass")

	unresolved := res.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, KindDuplicate, unresolved[0].Kind)
	assert.Equal(t, "B", unresolved[0].From)
}

func TestResolver_ExhaustedWhileStillChanging(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	slots := Build(entity.DepartmentMonitoring, names, day(time.October, 19))
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("B", day(time.October, 19), day(time.October, 19))})

	res := NewResolver(1).Resolve(slots, Directory{entity.DepartmentMonitoring: names}, leaves)

	assert.Equal(t, 1, res.Iterations)
	assert.True(t, res.Exhausted)
	assert.False(t, res.Converged)

	last := res.Diagnostics[len(res.Diagnostics)-1]
	assert.Equal(t, KindExhausted, last.Kind)
	assert.Equal(t, "stopped after 1 passes with conflicts remaining", last.String())
}

func TestResolver_SkipsOtherDepartmentsForReplacement(t *testing.T) {
	dir := Directory{
		entity.DepartmentConfig:     {"A", "B", "C"},
		entity.DepartmentMonitoring: {"K", "L", "M", "N"},
	}
	config := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "A", Backup: "B"}
	monitoring := &entity.RosterSlot{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 26), Kanban: "C", Monitoring: "L", Backup: "M"}
	leaves := NewLeaveIndex([]entity.LeaveInterval{leaveFor("A", day(time.October, 19), day(time.October, 19))})

	NewResolver(0).Resolve([]*entity.RosterSlot{config, monitoring}, dir, leaves)

	assert.Equal(t, "C", config.Primary)
	assert.Equal(t, "C", monitoring.Kanban, "slots of another department are never swap targets")
}
