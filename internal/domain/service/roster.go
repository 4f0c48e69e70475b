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

const (
	triggerGenerate  = "generate"
	triggerReconcile = "reconcile"
	triggerApprove   = "approve"
)

type rosterService struct {
	dm       contract.DataManager
	metrics  contract.Metrics
	logger   *slog.Logger
	resolver roster.Resolver
	now      func() time.Time
}

func newRosterService(dm contract.DataManager, metrics contract.Metrics, logger *slog.Logger, maxIterations int) *rosterService {
	return &rosterService{
		dm:       dm,
		metrics:  metrics,
		logger:   logger.With("component", "roster"),
		resolver: roster.NewResolver(maxIterations),
		now:      time.Now,
	}
}

// Generate rebuilds the whole roster from the active directory starting at this
// week's Monday, repairs leave conflicts and replaces every stored slot.
func (s *rosterService) Generate(ctx context.Context) (*roster.Result, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", triggerGenerate)
	anchor := roster.AnchorMonday(s.now())

	var (
		result *roster.Result
		slots  []*entity.RosterSlot
	)
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		dir, err := loadDirectory(ctx, tx)
		if err != nil {
			return err
		}

		leaves, err := loadLeaveIndex(ctx, tx)
		if err != nil {
			return err
		}

		slots = nil
		for _, dept := range entity.Departments {
			slots = append(slots, roster.Build(dept, dir[dept], anchor)...)
		}

		result = s.resolver.Resolve(slots, dir, leaves)

		if err := tx.Roster().ReplaceAll(ctx, slots); err != nil {
			return fmt.Errorf("failed to replace roster: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.Department]int)
	for _, slot := range slots {
		counts[slot.Department]++
	}
	for _, dept := range entity.Departments {
		s.metrics.AddGeneratedSlots(string(dept), counts[dept])
	}
	s.report(logger, triggerGenerate, result)

	logger.Info("roster generated",
		slog.String("anchor", anchor.Format(domain.DateLayout)),
		slog.Int("slots", len(slots)),
		slog.Int("iterations", result.Iterations),
		slog.Bool("converged", result.Converged),
	)

	return result, nil
}

// Reconcile runs one resolution pass over the stored roster and saves the slots it changed.
func (s *rosterService) Reconcile(ctx context.Context) (*roster.Result, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", triggerReconcile)

	var result *roster.Result
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		result, err = s.reconcile(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.report(logger, triggerReconcile, result)
	return result, nil
}

// reconcile is shared with leave approval, which runs it in its own transaction.
func (s *rosterService) reconcile(ctx context.Context, dm contract.DataManager) (*roster.Result, error) {
	slots, err := dm.Roster().List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	dir, err := loadDirectory(ctx, dm)
	if err != nil {
		return nil, err
	}

	leaves, err := loadLeaveIndex(ctx, dm)
	if err != nil {
		return nil, err
	}

	result := s.resolver.Pass(slots, dir, leaves)
	if len(result.Changed) == 0 {
		return result, nil
	}

	if err := dm.Roster().Save(ctx, result.Changed); err != nil {
		return nil, fmt.Errorf("failed to save reconciled slots: %w", err)
	}

	return result, nil
}

func (s *rosterService) List(ctx context.Context, department entity.Department) ([]*entity.RosterSlot, error) {
	if department != "" && department.Roles() == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDepartment, department)
	}

	slots, err := s.dm.Roster().List(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return slots, nil
}

// UpdateSlot overwrites the role names of one slot. Every non-empty name must
// belong to a known person and no person may hold two roles.
func (s *rosterService) UpdateSlot(ctx context.Context, id int64, in entity.SlotAssignment) (*entity.RosterSlot, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", "update_slot", slog.Int64("slot_id", id))

	slot, err := s.dm.Roster().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("roster slot %d: %w", id, domain.ErrNotFound)
	}

	edited := *slot
	wanted := map[entity.Role]string{
		entity.RolePrimary:    strings.TrimSpace(in.Primary),
		entity.RoleBackup:     strings.TrimSpace(in.Backup),
		entity.RoleKanban:     strings.TrimSpace(in.Kanban),
		entity.RoleMonitoring: strings.TrimSpace(in.Monitoring),
	}

	allowed := make(map[entity.Role]bool)
	for _, role := range slot.Department.Roles() {
		allowed[role] = true
	}

	for role, name := range wanted {
		if !allowed[role] {
			if name != "" {
				return nil, fmt.Errorf("%w: %s has no %s role", domain.ErrInvalidInput, slot.Department, role)
			}
			continue
		}

		if name != "" {
			person, err := s.dm.Person().GetByFullName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to look up %q: %w", name, err)
			}
			if person == nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPerson, name)
			}
			name = person.FullName
		}
		edited.SetRole(role, name)
	}

	if diags := roster.CheckDistinct([]*entity.RosterSlot{&edited}); len(diags) > 0 {
		return nil, fmt.Errorf("%w: %s holds more than one role", domain.ErrInvalidInput, diags[0].From)
	}

	if err := s.dm.Roster().Save(ctx, []*entity.RosterSlot{&edited}); err != nil {
		return nil, fmt.Errorf("failed to save roster slot: %w", err)
	}

	logger.Info("roster slot updated", slog.String("department", string(edited.Department)))
	return &edited, nil
}

func (s *rosterService) report(logger *slog.Logger, trigger string, result *roster.Result) {
	s.metrics.ObserveResolution(trigger, result)
	roster.LogDiagnostics(logger, result.Diagnostics)
}

// loadDirectory returns the active names of every department in rotation order.
func loadDirectory(ctx context.Context, dm contract.DataManager) (roster.Directory, error) {
	dir := make(roster.Directory, len(entity.Departments))
	for _, dept := range entity.Departments {
		persons, err := dm.Person().ListActiveByDepartment(ctx, dept)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s members: %w", dept, err)
		}
		dir[dept] = roster.Names(persons)
	}
	return dir, nil
}

func loadLeaveIndex(ctx context.Context, dm contract.DataManager) (*roster.LeaveIndex, error) {
	intervals, err := dm.Leave().ListApprovedIntervals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leave: %w", err)
	}
	return roster.NewLeaveIndex(intervals), nil
}
