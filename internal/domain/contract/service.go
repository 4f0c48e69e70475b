package contract

import (
	"context"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
)

type RosterService interface {
	Generate(ctx context.Context) (*roster.Result, error)
	Reconcile(ctx context.Context) (*roster.Result, error)
	List(ctx context.Context, department entity.Department) ([]*entity.RosterSlot, error)
	UpdateSlot(ctx context.Context, id int64, in entity.SlotAssignment) (*entity.RosterSlot, error)
}

type LeaveService interface {
	Create(ctx context.Context, personID string, start, end time.Time, note string) (*entity.LeaveRequest, error)
	Get(ctx context.Context, id int64) (*entity.LeaveRequest, error)
	List(ctx context.Context, personID string) ([]*entity.LeaveRequest, error)
	Approve(ctx context.Context, id int64, decidedBy string) (*roster.Result, error)
	Reject(ctx context.Context, id int64, decidedBy string) error
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CancelApproved(ctx context.Context, id int64, decidedBy string) error
	CleanupExpired(ctx context.Context) (int64, error)
	ExpiredPendingCount(ctx context.Context) (int64, error)
	PurgeCanceled(ctx context.Context, olderThanDays int) (int64, error)
}

type PersonService interface {
	Create(ctx context.Context, fullName string, department entity.Department, active bool) (*entity.Person, error)
	Get(ctx context.Context, id string) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
	Update(ctx context.Context, id string, update entity.PersonUpdate) (*entity.Person, error)
	Delete(ctx context.Context, id string) error
}
