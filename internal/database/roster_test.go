package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRepo_ReplaceAllAndList(t *testing.T) {
	db := SetupTestDB(t)
	repo := newRosterRepo(db.conn)
	ctx := context.Background()

	first := []*entity.RosterSlot{
		{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 26), Primary: "B", Backup: "A"},
		{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 19), Primary: "A", Backup: "B"},
		{Department: entity.DepartmentMonitoring, WeekStart: date(2026, 10, 19), Kanban: "X", Monitoring: "Y", Backup: "Z"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, first))
	for _, slot := range first {
		assert.NotZero(t, slot.ID)
	}

	config, err := repo.List(ctx, entity.DepartmentConfig)
	require.NoError(t, err)
	require.Len(t, config, 2)
	assert.Equal(t, date(2026, 10, 19), config[0].WeekStart)
	assert.Equal(t, "A", config[0].Primary)
	assert.Empty(t, config[0].Kanban)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	second := []*entity.RosterSlot{
		{Department: entity.DepartmentConfig, WeekStart: date(2026, 11, 2), Primary: "C", Backup: "D"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, second))

	all, err = repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "C", all[0].Primary)
}

func TestRosterRepo_Save(t *testing.T) {
	db := SetupTestDB(t)
	repo := newRosterRepo(db.conn)
	ctx := context.Background()

	slot := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 19), Primary: "A", Backup: "B"}
	require.NoError(t, repo.Save(ctx, []*entity.RosterSlot{slot}))
	require.NotZero(t, slot.ID)

	slot.Backup = ""
	slot.Primary = "C"
	placeholder := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 26), Primary: "A", Backup: "D"}
	require.NoError(t, repo.Save(ctx, []*entity.RosterSlot{slot, placeholder}))

	got, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "C", got.Primary)
	assert.Empty(t, got.Backup)

	all, err := repo.List(ctx, entity.DepartmentConfig)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRosterRepo_LastWriteWins(t *testing.T) {
	db := SetupTestDB(t)
	repo := newRosterRepo(db.conn)
	ctx := context.Background()

	slot := &entity.RosterSlot{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 19), Primary: "A", Backup: "B"}
	require.NoError(t, repo.Save(ctx, []*entity.RosterSlot{slot}))

	// two writers load the same row, then save without coordination
	writerOne, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	writerTwo, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)

	writerOne.Primary = "C"
	require.NoError(t, repo.Save(ctx, []*entity.RosterSlot{writerOne}))

	writerTwo.Backup = "D"
	require.NoError(t, repo.Save(ctx, []*entity.RosterSlot{writerTwo}))

	got, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Primary, "second writer overwrote the first writer's change")
	assert.Equal(t, "D", got.Backup)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	dm := NewInstance(db)
	ctx := context.Background()

	seed := []*entity.RosterSlot{{Department: entity.DepartmentConfig, WeekStart: date(2026, 10, 19), Primary: "A", Backup: "B"}}
	require.NoError(t, dm.Roster().ReplaceAll(ctx, seed))

	t.Run("should rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			replacement := []*entity.RosterSlot{{Department: entity.DepartmentConfig, WeekStart: date(2026, 11, 2), Primary: "X", Backup: "Y"}}
			if err := tx.Roster().ReplaceAll(ctx, replacement); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		slots, err := dm.Roster().List(ctx, "")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "A", slots[0].Primary)
	})

	t.Run("should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			replacement := []*entity.RosterSlot{{Department: entity.DepartmentConfig, WeekStart: date(2026, 11, 2), Primary: "X", Backup: "Y"}}
			return tx.Roster().ReplaceAll(ctx, replacement)
		})
		require.NoError(t, err)

		slots, err := dm.Roster().List(ctx, "")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "X", slots[0].Primary)
	})

	t.Run("should reuse the running transaction when nested", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
				_, err := inner.Roster().List(ctx, "")
				return err
			})
		})
		require.NoError(t, err)
	})
}
