package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/diegoclair/duty-roster/internal/logging"
)

type leaveService struct {
	dm      contract.DataManager
	roster  *rosterService
	metrics contract.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func newLeaveService(dm contract.DataManager, rosterService *rosterService, metrics contract.Metrics, logger *slog.Logger) *leaveService {
	return &leaveService{
		dm:      dm,
		roster:  rosterService,
		metrics: metrics,
		logger:  logger.With("component", "leave"),
		now:     time.Now,
	}
}

func (s *leaveService) today() time.Time {
	return roster.Date(s.now())
}

// Create files a pending request. end defaults to start. The person's expired
// pending requests are canceled first so they never block a new one.
func (s *leaveService) Create(ctx context.Context, personID string, start, end time.Time, note string) (*entity.LeaveRequest, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", "create", slog.String("person_id", personID))

	if start.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", domain.ErrInvalidInput)
	}
	start = roster.Date(start)
	if end.IsZero() {
		end = start
	}
	end = roster.Date(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", domain.ErrInvalidInput,
			end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	today := s.today()
	if start.Before(today) {
		return nil, fmt.Errorf("leave starting %s: %w", start.Format(domain.DateLayout), domain.ErrPastDate)
	}

	person, err := s.dm.Person().GetByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if person == nil {
		return nil, fmt.Errorf("person %s: %w", personID, domain.ErrUnknownPerson)
	}

	canceled, err := s.dm.Leave().CancelExpiredPending(ctx, personID, today, s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusCanceled), canceled)

	exists, err := s.dm.Leave().HasLiveRequestOn(ctx, personID, start)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("leave starting %s: %w", start.Format(domain.DateLayout), domain.ErrDuplicateRequest)
	}

	request := &entity.LeaveRequest{
		PersonID:   person.ID,
		PersonName: person.FullName,
		StartDate:  start,
		EndDate:    end,
		Status:     entity.LeaveStatusPending,
		Note:       strings.TrimSpace(note),
	}
	if err := s.dm.Leave().Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("leave request created",
		slog.Int64("request_id", request.ID),
		slog.String("start", start.Format(domain.DateLayout)),
		slog.String("end", end.Format(domain.DateLayout)),
	)
	return request, nil
}

func (s *leaveService) Get(ctx context.Context, id int64) (*entity.LeaveRequest, error) {
	request, err := s.dm.Leave().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("leave request %d: %w", id, domain.ErrNotFound)
	}
	return request, nil
}

// List returns the requests of one person, or of everyone when personID is empty,
// after sweeping the expired pending ones in the same scope.
func (s *leaveService) List(ctx context.Context, personID string) ([]*entity.LeaveRequest, error) {
	canceled, err := s.dm.Leave().CancelExpiredPending(ctx, personID, s.today(), s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusCanceled), canceled)

	return s.dm.Leave().List(ctx, personID)
}

// Approve accepts a pending request that has not started yet, then runs one
// reconciliation pass so the roster stops naming the person for those weeks.
func (s *leaveService) Approve(ctx context.Context, id int64, decidedBy string) (*roster.Result, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", triggerApprove, slog.Int64("request_id", id))

	var result *roster.Result
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		request, err := s.pending(ctx, tx, id)
		if err != nil {
			return err
		}
		if request.StartDate.Before(s.today()) {
			return fmt.Errorf("leave request %d: %w", id, domain.ErrPastDate)
		}

		if err := s.decide(ctx, tx, request, entity.LeaveStatusApproved, decidedBy); err != nil {
			return err
		}

		result, err = s.roster.reconcile(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusApproved), 1)
	s.roster.report(logger, triggerApprove, result)
	logger.Info("leave request approved", slog.String("decided_by", decidedBy), slog.Int("changed_slots", len(result.Changed)))

	return result, nil
}

func (s *leaveService) Reject(ctx context.Context, id int64, decidedBy string) error {
	request, err := s.pending(ctx, s.dm, id)
	if err != nil {
		return err
	}

	if err := s.decide(ctx, s.dm, request, entity.LeaveStatusRejected, decidedBy); err != nil {
		return err
	}

	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusRejected), 1)
	return nil
}

func (s *leaveService) Cancel(ctx context.Context, id int64) error {
	request, err := s.pending(ctx, s.dm, id)
	if err != nil {
		return err
	}

	if err := s.decide(ctx, s.dm, request, entity.LeaveStatusCanceled, ""); err != nil {
		return err
	}

	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusCanceled), 1)
	return nil
}

// Delete removes a pending or canceled request. Approved requests go through CancelApproved.
func (s *leaveService) Delete(ctx context.Context, id int64) error {
	request, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !request.Deletable() {
		return fmt.Errorf("leave request %d is %s: %w", id, request.Status, domain.ErrInvalidStatus)
	}

	return s.dm.Leave().Delete(ctx, id)
}

// CancelApproved withdraws an approved request by deleting it. The roster is
// left as reconciled; the next generation picks the person up again.
func (s *leaveService) CancelApproved(ctx context.Context, id int64, decidedBy string) error {
	logger := logging.FromContext(ctx, s.logger).With("operation", "cancel_approved", slog.Int64("request_id", id))

	request, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != entity.LeaveStatusApproved {
		return fmt.Errorf("leave request %d is %s: %w", id, request.Status, domain.ErrInvalidStatus)
	}

	if err := s.dm.Leave().Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("approved leave withdrawn", slog.String("person", request.PersonName), slog.String("by", decidedBy))
	return nil
}

// CleanupExpired cancels every pending request whose start date has passed.
func (s *leaveService) CleanupExpired(ctx context.Context) (int64, error) {
	canceled, err := s.dm.Leave().CancelExpiredPending(ctx, "", s.today(), s.now().UTC())
	if err != nil {
		return 0, err
	}

	s.metrics.AddLeaveTransitions(string(entity.LeaveStatusCanceled), canceled)
	if canceled > 0 {
		logging.FromContext(ctx, s.logger).Info("expired leave requests canceled", slog.Int64("count", canceled))
	}
	return canceled, nil
}

func (s *leaveService) ExpiredPendingCount(ctx context.Context) (int64, error) {
	return s.dm.Leave().CountExpiredPending(ctx, "", s.today())
}

// PurgeCanceled deletes canceled requests decided more than olderThanDays days ago.
func (s *leaveService) PurgeCanceled(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("%w: retention must not be negative", domain.ErrInvalidInput)
	}

	cutoff := s.now().UTC().AddDate(0, 0, -olderThanDays)
	deleted, err := s.dm.Leave().DeleteCanceledBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		logging.FromContext(ctx, s.logger).Info("canceled leave requests purged", slog.Int64("count", deleted))
	}
	return deleted, nil
}

func (s *leaveService) pending(ctx context.Context, dm contract.DataManager, id int64) (*entity.LeaveRequest, error) {
	request, err := dm.Leave().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("leave request %d: %w", id, domain.ErrNotFound)
	}
	if request.Status != entity.LeaveStatusPending {
		return nil, fmt.Errorf("leave request %d is %s: %w", id, request.Status, domain.ErrInvalidStatus)
	}
	return request, nil
}

func (s *leaveService) decide(ctx context.Context, dm contract.DataManager, request *entity.LeaveRequest, status entity.LeaveStatus, decidedBy string) error {
	decidedAt := s.now().UTC()
	request.Status = status
	request.DecidedBy = decidedBy
	request.DecidedAt = &decidedAt

	return dm.Leave().UpdateStatus(ctx, request)
}
