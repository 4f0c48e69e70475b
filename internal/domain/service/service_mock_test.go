package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/logging"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockPersonRepo   *mocks.MockPersonRepo
	mockLeaveRepo    *mocks.MockLeaveRepo
	mockRosterRepo   *mocks.MockRosterRepo
	mockMetrics      *mocks.MockMetrics
	mockLeaveService *mocks.MockLeaveService
}

// fixedNow is a Wednesday; the current duty week starts on Monday 2026-10-19.
var fixedNow = time.Date(2026, 10, 21, 10, 30, 0, 0, time.UTC)

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	personRepo := mocks.NewMockPersonRepo(ctrl)
	dm.EXPECT().Person().Return(personRepo).AnyTimes()

	leaveRepo := mocks.NewMockLeaveRepo(ctrl)
	dm.EXPECT().Leave().Return(leaveRepo).AnyTimes()

	rosterRepo := mocks.NewMockRosterRepo(ctrl)
	dm.EXPECT().Roster().Return(rosterRepo).AnyTimes()

	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveResolution(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().AddGeneratedSlots(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().AddLeaveTransitions(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().IncCleanupRun(gomock.Any()).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockPersonRepo:   personRepo,
		mockLeaveRepo:    leaveRepo,
		mockRosterRepo:   rosterRepo,
		mockMetrics:      metrics,
		mockLeaveService: mocks.NewMockLeaveService(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, metrics, logging.Discard(), Options{})
	require.NotNil(t, instance.Roster)
	require.NotNil(t, instance.Leave)
	require.NotNil(t, instance.Person)
	require.NotNil(t, instance.Cleanup)

	return
}

func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}

func newTestRosterService(m allMocks) *rosterService {
	s := newRosterService(m.mockDataManager, m.mockMetrics, logging.Discard(), 0)
	s.now = func() time.Time { return fixedNow }
	return s
}

func newTestLeaveService(m allMocks) *leaveService {
	s := newLeaveService(m.mockDataManager, newTestRosterService(m), m.mockMetrics, logging.Discard())
	s.now = func() time.Time { return fixedNow }
	return s
}
