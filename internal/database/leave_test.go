package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createLeave(t *testing.T, db *DB, personID string, start, end time.Time, status entity.LeaveStatus) *entity.LeaveRequest {
	t.Helper()

	request := &entity.LeaveRequest{PersonID: personID, StartDate: start, EndDate: end, Status: status}
	require.NoError(t, newLeaveRepo(db.conn).Create(context.Background(), request))
	return request
}

func TestLeaveRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	person := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)

	request := &entity.LeaveRequest{
		PersonID:  person.ID,
		StartDate: date(2026, 10, 20),
		EndDate:   date(2026, 10, 23),
		Note:      "family trip",
	}
	require.NoError(t, repo.Create(context.Background(), request))
	assert.NotZero(t, request.ID)
	assert.Equal(t, entity.LeaveStatusPending, request.Status)

	got, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ayla Demir", got.PersonName)
	assert.Equal(t, date(2026, 10, 20), got.StartDate)
	assert.Equal(t, date(2026, 10, 23), got.EndDate)
	assert.Equal(t, "family trip", got.Note)
	assert.Nil(t, got.DecidedAt)

	missing, err := repo.GetByID(context.Background(), request.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLeaveRepo_UpdateStatus(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	person := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)
	request := createLeave(t, db, person.ID, date(2026, 10, 20), date(2026, 10, 20), entity.LeaveStatusPending)

	decided := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	request.Status = entity.LeaveStatusApproved
	request.DecidedBy = "Lead"
	request.DecidedAt = &decided
	require.NoError(t, repo.UpdateStatus(context.Background(), request))

	got, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatusApproved, got.Status)
	assert.Equal(t, "Lead", got.DecidedBy)
	require.NotNil(t, got.DecidedAt)
	assert.True(t, decided.Equal(*got.DecidedAt))
}

func TestLeaveRepo_ListAndIntervals(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	ctx := context.Background()
	ayla := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)
	burak := createPerson(t, db, "Burak Kaya", entity.DepartmentMonitoring, true)

	createLeave(t, db, ayla.ID, date(2026, 11, 2), date(2026, 11, 6), entity.LeaveStatusApproved)
	createLeave(t, db, ayla.ID, date(2026, 10, 26), date(2026, 10, 27), entity.LeaveStatusPending)
	createLeave(t, db, burak.ID, date(2026, 10, 19), date(2026, 10, 21), entity.LeaveStatusApproved)
	createLeave(t, db, burak.ID, date(2026, 12, 1), date(2026, 12, 1), entity.LeaveStatusRejected)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, date(2026, 10, 19), all[0].StartDate)

	mine, err := repo.List(ctx, ayla.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	intervals, err := repo.ListApprovedIntervals(ctx)
	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.Equal(t, entity.LeaveInterval{
		PersonID:   burak.ID,
		PersonName: "Burak Kaya",
		Start:      date(2026, 10, 19),
		End:        date(2026, 10, 21),
	}, intervals[0])
	assert.Equal(t, "Ayla Demir", intervals[1].PersonName)
}

func TestLeaveRepo_HasLiveRequestOn(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	ctx := context.Background()
	person := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)

	createLeave(t, db, person.ID, date(2026, 10, 20), date(2026, 10, 20), entity.LeaveStatusRejected)
	createLeave(t, db, person.ID, date(2026, 10, 21), date(2026, 10, 21), entity.LeaveStatusCanceled)
	createLeave(t, db, person.ID, date(2026, 10, 22), date(2026, 10, 22), entity.LeaveStatusApproved)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{name: "rejected does not block", day: date(2026, 10, 20), want: false},
		{name: "canceled does not block", day: date(2026, 10, 21), want: false},
		{name: "approved blocks", day: date(2026, 10, 22), want: true},
		{name: "free day", day: date(2026, 10, 23), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasLiveRequestOn(ctx, person.ID, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeaveRepo_ExpiredPending(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	ctx := context.Background()
	ayla := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)
	burak := createPerson(t, db, "Burak Kaya", entity.DepartmentConfig, true)
	today := date(2026, 10, 18)

	expired := createLeave(t, db, ayla.ID, date(2026, 10, 10), date(2026, 10, 12), entity.LeaveStatusPending)
	createLeave(t, db, ayla.ID, date(2026, 10, 18), date(2026, 10, 18), entity.LeaveStatusPending)
	createLeave(t, db, ayla.ID, date(2026, 10, 1), date(2026, 10, 1), entity.LeaveStatusApproved)
	createLeave(t, db, burak.ID, date(2026, 10, 15), date(2026, 10, 15), entity.LeaveStatusPending)

	count, err := repo.CountExpiredPending(ctx, "", today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountExpiredPending(ctx, ayla.ID, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	canceled, err := repo.CancelExpiredPending(ctx, ayla.ID, today, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), canceled)

	got, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatusCanceled, got.Status)
	require.NotNil(t, got.DecidedAt)

	canceled, err = repo.CancelExpiredPending(ctx, "", today, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), canceled)

	count, err = repo.CountExpiredPending(ctx, "", today)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLeaveRepo_DeleteCanceledBefore(t *testing.T) {
	db := SetupTestDB(t)
	repo := newLeaveRepo(db.conn)
	ctx := context.Background()
	person := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)

	old := createLeave(t, db, person.ID, date(2026, 8, 3), date(2026, 8, 3), entity.LeaveStatusCanceled)
	oldDecision := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	old.DecidedAt = &oldDecision
	require.NoError(t, repo.UpdateStatus(ctx, old))

	recent := createLeave(t, db, person.ID, date(2026, 10, 5), date(2026, 10, 5), entity.LeaveStatusCanceled)
	recentDecision := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	recent.DecidedAt = &recentDecision
	require.NoError(t, repo.UpdateStatus(ctx, recent))

	deleted, err := repo.DeleteCanceledBefore(ctx, date(2026, 9, 18))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.List(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}

func TestLeaveRepo_CascadeOnPersonDelete(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()
	person := createPerson(t, db, "Ayla Demir", entity.DepartmentConfig, true)
	request := createLeave(t, db, person.ID, date(2026, 10, 20), date(2026, 10, 20), entity.LeaveStatusPending)

	require.NoError(t, newPersonRepo(db.conn).Delete(ctx, person.ID))

	got, err := newLeaveRepo(db.conn).GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
