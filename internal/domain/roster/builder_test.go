package roster

import (
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAnchorMonday(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{name: "Should keep a Monday", today: day(time.October, 19), want: day(time.October, 19)},
		{name: "Should go back from Wednesday", today: day(time.October, 21), want: day(time.October, 19)},
		{name: "Should treat Sunday as the end of the week", today: day(time.October, 18), want: day(time.October, 12)},
		{name: "Should drop the time of day", today: time.Date(2026, 10, 24, 17, 45, 0, 0, time.UTC), want: day(time.October, 19)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnchorMonday(tt.today))
		})
	}
}

func TestBuild_Config(t *testing.T) {
	anchor := day(time.October, 19)

	slots := Build(entity.DepartmentConfig, []string{"A", "B", "C"}, anchor)

	require.Len(t, slots, 3)
	want := []struct {
		primary, backup string
		week            time.Time
	}{
		{"A", "B", day(time.October, 19)},
		{"B", "C", day(time.October, 26)},
		{"C", "A", day(time.November, 2)},
	}
	for i, w := range want {
		assert.Equal(t, entity.DepartmentConfig, slots[i].Department)
		assert.Equal(t, w.primary, slots[i].Primary)
		assert.Equal(t, w.backup, slots[i].Backup)
		assert.Equal(t, w.week, slots[i].WeekStart)
		assert.Zero(t, slots[i].ID)
	}
}

func TestBuild_SlotCountAndSpacing(t *testing.T) {
	anchor := day(time.October, 19)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}

	for n := 1; n <= len(names); n++ {
		config := Build(entity.DepartmentConfig, names[:n], anchor)
		assert.Len(t, config, n, "config slots for %d people", n)

		monitoring := Build(entity.DepartmentMonitoring, names[:n], anchor)
		assert.LessOrEqual(t, len(monitoring), n, "monitoring slots for %d people", n)

		for _, slots := range [][]*entity.RosterSlot{config, monitoring} {
			for i := 1; i < len(slots); i++ {
				assert.Equal(t, slots[i-1].WeekStart.AddDate(0, 0, 7), slots[i].WeekStart)
			}
			if len(slots) > 0 {
				assert.Equal(t, anchor, slots[0].WeekStart)
			}
		}
	}
}

func TestBuild_Monitoring(t *testing.T) {
	anchor := day(time.October, 19)

	t.Run("Should rotate three roles", func(t *testing.T) {
		slots := Build(entity.DepartmentMonitoring, []string{"A", "B", "C"}, anchor)

		require.Len(t, slots, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{slots[0].Kanban, slots[0].Monitoring, slots[0].Backup})
		assert.Equal(t, []string{"B", "C", "A"}, []string{slots[1].Kanban, slots[1].Monitoring, slots[1].Backup})
		assert.Equal(t, []string{"C", "A", "B"}, []string{slots[2].Kanban, slots[2].Monitoring, slots[2].Backup})
		assert.Empty(t, slots[0].Primary)
	})

	t.Run("Should drop slots that cannot be distinct", func(t *testing.T) {
		assert.Empty(t, Build(entity.DepartmentMonitoring, []string{"A", "B"}, anchor))
		assert.Empty(t, Build(entity.DepartmentMonitoring, []string{"A"}, anchor))
	})
}

func TestBuild_Empty(t *testing.T) {
	assert.Nil(t, Build(entity.DepartmentConfig, nil, day(time.October, 19)))
	assert.Nil(t, Build(entity.Department("sales"), []string{"A"}, day(time.October, 19)))
}

func TestNames(t *testing.T) {
	persons := []*entity.Person{{FullName: "Ayla"}, {FullName: "Burak"}}
	assert.Equal(t, []string{"Ayla", "Burak"}, Names(persons))
}
