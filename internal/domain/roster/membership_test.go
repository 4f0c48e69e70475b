package roster

import (
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	slots := []*entity.RosterSlot{
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "John Doe", Backup: "Ayla"},
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 26), Primary: "Ayla", Backup: "john doe"},
		{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 19), Kanban: "Burak", Monitoring: "JOHN DOE", Backup: "Cem"},
		{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 26), Kanban: "Burak", Monitoring: "Cem", Backup: "Deniz"},
	}

	changed := Rename(slots, "John Doe", "Jane Doe")

	assert.Len(t, changed, 3)
	assert.Equal(t, "Jane Doe", slots[0].Primary)
	assert.Equal(t, "Jane Doe", slots[1].Backup)
	assert.Equal(t, "Jane Doe", slots[2].Monitoring)
	for _, s := range slots {
		_, held := s.Holds("John Doe")
		assert.False(t, held)
	}

	assert.Nil(t, Rename(slots, "Ayla", "Ayla"))
	assert.Nil(t, Rename(slots, "Ayla", ""))
}

func TestRemove(t *testing.T) {
	slots := []*entity.RosterSlot{
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "Ayla", Backup: "Burak"},
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 26), Primary: "Burak", Backup: "Cem"},
	}

	changed := Remove(slots, "burak")

	assert.Len(t, changed, 2)
	assert.Equal(t, "Ayla", slots[0].Primary)
	assert.Empty(t, slots[0].Backup)
	assert.Empty(t, slots[1].Primary)
	assert.Equal(t, "Cem", slots[1].Backup)
	assert.Empty(t, Remove(slots, "Nobody"))
}

func TestIntegrate_Config(t *testing.T) {
	only := &entity.RosterSlot{ID: 7, Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "X", Backup: "Y"}

	out := Integrate(entity.DepartmentConfig, []*entity.RosterSlot{only}, "NewPerson")

	require.NotNil(t, out)
	require.NotNil(t, out.Created)
	assert.Zero(t, out.Created.ID)
	assert.Equal(t, entity.DepartmentConfig, out.Created.Department)
	assert.Equal(t, day(time.October, 20), out.Created.WeekStart)
	assert.Equal(t, "X", out.Created.Primary)
	assert.Equal(t, "NewPerson", out.Created.Backup)

	assert.Equal(t, "NewPerson", only.Primary)
	assert.Equal(t, "Y", only.Backup)
	assert.Equal(t, []*entity.RosterSlot{only}, out.Modified)
}

func TestIntegrate_Monitoring(t *testing.T) {
	first := &entity.RosterSlot{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 19), Kanban: "A", Monitoring: "B", Backup: "C"}
	second := &entity.RosterSlot{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 26), Kanban: "B", Monitoring: "C", Backup: "A"}
	config := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: day(time.December, 7), Primary: "X", Backup: "Y"}

	// unordered input, and a config slot that must not influence the dates
	out := Integrate(entity.DepartmentMonitoring, []*entity.RosterSlot{second, config, first}, "P")

	require.NotNil(t, out)
	assert.Equal(t, day(time.October, 27), out.Created.WeekStart)
	assert.Equal(t, []string{"A", "B", "P"}, []string{out.Created.Kanban, out.Created.Monitoring, out.Created.Backup})
	assert.Equal(t, []string{"B", "P", "C"}, []string{first.Kanban, first.Monitoring, first.Backup})
	assert.Equal(t, []string{"P", "C", "A"}, []string{second.Kanban, second.Monitoring, second.Backup})
	assert.Equal(t, []*entity.RosterSlot{first, second}, out.Modified)
	assert.Equal(t, "X", config.Primary)
}

func TestIntegrate_MonitoringSingleSlot(t *testing.T) {
	first := &entity.RosterSlot{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 19), Kanban: "A", Monitoring: "B", Backup: "C"}

	out := Integrate(entity.DepartmentMonitoring, []*entity.RosterSlot{first}, "P")

	require.NotNil(t, out)
	assert.Len(t, out.Modified, 1)
	assert.Equal(t, []string{"B", "P", "C"}, []string{first.Kanban, first.Monitoring, first.Backup})
}

func TestIntegrate_NoSlots(t *testing.T) {
	config := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "X", Backup: "Y"}

	assert.Nil(t, Integrate(entity.DepartmentMonitoring, nil, "P"))
	assert.Nil(t, Integrate(entity.DepartmentMonitoring, []*entity.RosterSlot{config}, "P"))
	assert.Equal(t, "X", config.Primary)
}

func TestCheckDistinct(t *testing.T) {
	slots := []*entity.RosterSlot{
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 19), Primary: "Ayla", Backup: "ayla"},
		{Department: entity.DepartmentConfig, WeekStart: day(time.October, 26), Primary: "Ayla", Backup: ""},
		{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 19), Kanban: "", Monitoring: "", Backup: "Cem"},
		{Department: entity.DepartmentMonitoring, WeekStart: day(time.October, 26), Kanban: "Cem", Monitoring: "Deniz", Backup: "Cem"},
	}

	diags := CheckDistinct(slots)

	require.Len(t, diags, 2)
	assert.Equal(t, day(time.October, 19), diags[0].Date)
	assert.Equal(t, "Ayla", diags[0].From)
	assert.Equal(t, entity.DepartmentMonitoring, diags[1].Department)
	assert.Equal(t, "[2026-10-26] monitoring: Cem holds more than one role", diags[1].String())
}
