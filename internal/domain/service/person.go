package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/diegoclair/duty-roster/internal/logging"
	"github.com/google/uuid"
)

type personService struct {
	dm     contract.DataManager
	logger *slog.Logger
}

func newPersonService(dm contract.DataManager, logger *slog.Logger) *personService {
	return &personService{
		dm:     dm,
		logger: logger.With("component", "person"),
	}
}

func (s *personService) Create(ctx context.Context, fullName string, department entity.Department, active bool) (*entity.Person, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
	}
	if department.Roles() == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDepartment, department)
	}

	if err := s.ensureNameFree(ctx, fullName, ""); err != nil {
		return nil, err
	}

	person := &entity.Person{
		ID:         uuid.NewString(),
		FullName:   fullName,
		Department: department,
		IsActive:   active,
	}
	if err := s.dm.Person().Create(ctx, person); err != nil {
		return nil, err
	}

	logging.FromContext(ctx, s.logger).Info("person created",
		slog.String("person_id", person.ID),
		slog.String("department", string(department)),
	)
	return person, nil
}

func (s *personService) Get(ctx context.Context, id string) (*entity.Person, error) {
	person, err := s.dm.Person().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, fmt.Errorf("person %s: %w", id, domain.ErrNotFound)
	}
	return person, nil
}

func (s *personService) List(ctx context.Context) ([]*entity.Person, error) {
	return s.dm.Person().List(ctx)
}

// Update saves the person, then carries the change into the roster: a rename
// rewrites every role, deactivation blanks the person's roles and a department
// move removes them from the old rotation and shifts them into the new one.
// Each step is saved on its own; a failure leaves the earlier steps in place.
func (s *personService) Update(ctx context.Context, id string, update entity.PersonUpdate) (*entity.Person, error) {
	logger := logging.FromContext(ctx, s.logger).With("operation", "update", slog.String("person_id", id))

	person, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *person

	if update.FullName != nil {
		name := strings.TrimSpace(*update.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
		}
		if err := s.ensureNameFree(ctx, name, person.ID); err != nil {
			return nil, err
		}
		person.FullName = name
	}
	if update.Department != nil {
		if update.Department.Roles() == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDepartment, *update.Department)
		}
		person.Department = *update.Department
	}
	if update.IsActive != nil {
		person.IsActive = *update.IsActive
	}

	if err := s.dm.Person().Update(ctx, person); err != nil {
		return nil, err
	}

	if person.FullName != before.FullName {
		if err := s.renameInRoster(ctx, before.FullName, person.FullName); err != nil {
			return nil, err
		}
		logger.Info("roster names rewritten", slog.String("from", before.FullName), slog.String("to", person.FullName))
	}

	if before.IsActive && !person.IsActive {
		if err := s.removeFromRoster(ctx, "", person.FullName); err != nil {
			return nil, err
		}
		logger.Info("inactive person removed from roster")
	}

	if person.Department != before.Department {
		if err := s.transfer(ctx, logger, person, before.Department); err != nil {
			return nil, err
		}
	}

	return person, nil
}

// Delete blanks the person's roles in every slot before removing the record.
func (s *personService) Delete(ctx context.Context, id string) error {
	person, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.removeFromRoster(ctx, "", person.FullName); err != nil {
		return err
	}

	if err := s.dm.Person().Delete(ctx, id); err != nil {
		return err
	}

	logging.FromContext(ctx, s.logger).Info("person deleted", slog.String("person_id", id))
	return nil
}

func (s *personService) transfer(ctx context.Context, logger *slog.Logger, person *entity.Person, from entity.Department) error {
	if err := s.removeFromRoster(ctx, from, person.FullName); err != nil {
		return err
	}

	if !person.IsActive {
		return nil
	}

	slots, err := s.dm.Roster().List(ctx, person.Department)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	integration := roster.Integrate(person.Department, slots, person.FullName)
	if integration == nil {
		logger.Info("no rotation to join yet", slog.String("department", string(person.Department)))
		return nil
	}

	changed := append([]*entity.RosterSlot{}, integration.Modified...)
	changed = append(changed, integration.Created)
	if err := s.dm.Roster().Save(ctx, changed); err != nil {
		return fmt.Errorf("failed to save integrated slots: %w", err)
	}

	logger.Info("person moved between rotations",
		slog.String("from", string(from)),
		slog.String("to", string(person.Department)),
		slog.String("placeholder_week", integration.Created.WeekStart.Format(domain.DateLayout)),
	)
	roster.LogDiagnostics(logger, roster.CheckDistinct(append(slots, integration.Created)))

	return nil
}

func (s *personService) renameInRoster(ctx context.Context, oldName, newName string) error {
	slots, err := s.dm.Roster().List(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	return s.saveChanged(ctx, roster.Rename(slots, oldName, newName))
}

// removeFromRoster blanks name in the slots of department, or of every department when it is empty.
func (s *personService) removeFromRoster(ctx context.Context, department entity.Department, name string) error {
	slots, err := s.dm.Roster().List(ctx, department)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	return s.saveChanged(ctx, roster.Remove(slots, name))
}

func (s *personService) saveChanged(ctx context.Context, changed []*entity.RosterSlot) error {
	if len(changed) == 0 {
		return nil
	}
	if err := s.dm.Roster().Save(ctx, changed); err != nil {
		return fmt.Errorf("failed to save roster slots: %w", err)
	}
	return nil
}

func (s *personService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.dm.Person().GetByFullName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%s: %w", name, domain.ErrDuplicateName)
	}
	return nil
}
