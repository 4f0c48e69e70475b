package contract

import (
	"context"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Person() PersonRepo
	Leave() LeaveRepo
	Roster() RosterRepo
}

// PersonRepo is the person directory. Get methods return nil, nil when nothing matches.
type PersonRepo interface {
	Create(ctx context.Context, person *entity.Person) error
	Update(ctx context.Context, person *entity.Person) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Person, error)
	GetByFullName(ctx context.Context, fullName string) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	ListActiveByDepartment(ctx context.Context, department entity.Department) ([]*entity.Person, error)
}

// LeaveRepo stores leave requests. An empty personID means every person.
type LeaveRepo interface {
	Create(ctx context.Context, request *entity.LeaveRequest) error
	GetByID(ctx context.Context, id int64) (*entity.LeaveRequest, error)
	List(ctx context.Context, personID string) ([]*entity.LeaveRequest, error)
	UpdateStatus(ctx context.Context, request *entity.LeaveRequest) error
	Delete(ctx context.Context, id int64) error
	HasLiveRequestOn(ctx context.Context, personID string, startDate time.Time) (bool, error)
	ListApprovedIntervals(ctx context.Context) ([]entity.LeaveInterval, error)
	CancelExpiredPending(ctx context.Context, personID string, today time.Time, decidedAt time.Time) (int64, error)
	CountExpiredPending(ctx context.Context, personID string, today time.Time) (int64, error)
	DeleteCanceledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RosterRepo stores roster slots. An empty department means both departments.
type RosterRepo interface {
	List(ctx context.Context, department entity.Department) ([]*entity.RosterSlot, error)
	GetByID(ctx context.Context, id int64) (*entity.RosterSlot, error)
	ReplaceAll(ctx context.Context, slots []*entity.RosterSlot) error
	Save(ctx context.Context, slots []*entity.RosterSlot) error
}
