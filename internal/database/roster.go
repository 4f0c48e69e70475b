package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

const rosterColumns = `id, department, week_start, primary_name, backup_name, kanban_name, monitoring_name`

type rosterRepo struct {
	db dbConn
}

func newRosterRepo(db dbConn) contract.RosterRepo {
	return &rosterRepo{db: db}
}

func (r *rosterRepo) List(ctx context.Context, department entity.Department) ([]*entity.RosterSlot, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM roster_slots
		WHERE (? = '' OR department = ?)
		ORDER BY week_start ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, department, department)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster slots: %w", err)
	}
	defer rows.Close()

	var slots []*entity.RosterSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster slots: %w", err)
	}

	return slots, nil
}

func (r *rosterRepo) GetByID(ctx context.Context, id int64) (*entity.RosterSlot, error) {
	query := `SELECT ` + rosterColumns + ` FROM roster_slots WHERE id = ?`

	slot, err := scanSlot(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster slot: %w", err)
	}

	return slot, nil
}

// ReplaceAll drops every stored slot and inserts slots in order.
// Callers run it inside a transaction so readers never see a half-written roster.
func (r *rosterRepo) ReplaceAll(ctx context.Context, slots []*entity.RosterSlot) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM roster_slots`); err != nil {
		return fmt.Errorf("failed to clear roster slots: %w", err)
	}

	for _, slot := range slots {
		slot.ID = 0
		if err := r.insert(ctx, slot); err != nil {
			return err
		}
	}

	return nil
}

// Save inserts slots without an ID and updates the rest.
func (r *rosterRepo) Save(ctx context.Context, slots []*entity.RosterSlot) error {
	for _, slot := range slots {
		if slot.ID == 0 {
			if err := r.insert(ctx, slot); err != nil {
				return err
			}
			continue
		}
		if err := r.update(ctx, slot); err != nil {
			return err
		}
	}

	return nil
}

func (r *rosterRepo) insert(ctx context.Context, slot *entity.RosterSlot) error {
	query := `
		INSERT INTO roster_slots (department, week_start, primary_name, backup_name, kanban_name, monitoring_name, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		slot.Department,
		formatDate(slot.WeekStart),
		nullString(slot.Primary),
		nullString(slot.Backup),
		nullString(slot.Kanban),
		nullString(slot.Monitoring),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create roster slot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = id
	return nil
}

func (r *rosterRepo) update(ctx context.Context, slot *entity.RosterSlot) error {
	query := `
		UPDATE roster_slots
		SET department = ?, week_start = ?, primary_name = ?, backup_name = ?,
			kanban_name = ?, monitoring_name = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		slot.Department,
		formatDate(slot.WeekStart),
		nullString(slot.Primary),
		nullString(slot.Backup),
		nullString(slot.Kanban),
		nullString(slot.Monitoring),
		time.Now().UTC(),
		slot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roster slot: %w", err)
	}

	return nil
}

func scanSlot(row scanner) (*entity.RosterSlot, error) {
	var (
		slot                                entity.RosterSlot
		weekStart                           string
		primary, backup, kanban, monitoring sql.NullString
	)

	err := row.Scan(&slot.ID, &slot.Department, &weekStart, &primary, &backup, &kanban, &monitoring)
	if err != nil {
		return nil, err
	}

	if slot.WeekStart, err = parseDate(weekStart); err != nil {
		return nil, err
	}
	slot.Primary = primary.String
	slot.Backup = backup.String
	slot.Kanban = kanban.String
	slot.Monitoring = monitoring.String

	return &slot, nil
}
