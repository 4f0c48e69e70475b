package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

const leaveColumns = `
	l.id, l.person_id, p.full_name, l.start_date, l.end_date, l.status,
	l.note, l.decided_by, l.decided_at, l.created_at
`

type leaveRepo struct {
	db dbConn
}

func newLeaveRepo(db dbConn) contract.LeaveRepo {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, request *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (person_id, start_date, end_date, status, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if request.Status == "" {
		request.Status = entity.LeaveStatusPending
	}
	request.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		request.PersonID,
		formatDate(request.StartDate),
		formatDate(request.EndDate),
		request.Status,
		request.Note,
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	request.ID = id
	return nil
}

func (r *leaveRepo) GetByID(ctx context.Context, id int64) (*entity.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN persons p ON p.id = l.person_id
		WHERE l.id = ?
	`

	request, err := scanLeave(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRepo) List(ctx context.Context, personID string) ([]*entity.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN persons p ON p.id = l.person_id
		WHERE (? = '' OR l.person_id = ?)
		ORDER BY l.start_date ASC, l.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, personID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.LeaveRequest
	for rows.Next() {
		request, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

func (r *leaveRepo) UpdateStatus(ctx context.Context, request *entity.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET status = ?, decided_by = ?, decided_at = ?
		WHERE id = ?
	`

	var decidedAt sql.NullTime
	if request.DecidedAt != nil {
		decidedAt = sql.NullTime{Time: *request.DecidedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query, request.Status, request.DecidedBy, decidedAt, request.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	return nil
}

func (r *leaveRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leave_requests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}

// HasLiveRequestOn reports whether the person already has a request starting on startDate
// that was neither rejected nor canceled.
func (r *leaveRepo) HasLiveRequestOn(ctx context.Context, personID string, startDate time.Time) (bool, error) {
	query := `
		SELECT COUNT(1)
		FROM leave_requests
		WHERE person_id = ? AND start_date = ? AND status NOT IN (?, ?)
	`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		personID,
		formatDate(startDate),
		entity.LeaveStatusRejected,
		entity.LeaveStatusCanceled,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check existing leave requests: %w", err)
	}

	return count > 0, nil
}

func (r *leaveRepo) ListApprovedIntervals(ctx context.Context) ([]entity.LeaveInterval, error) {
	query := `
		SELECT l.person_id, p.full_name, l.start_date, l.end_date
		FROM leave_requests l
		JOIN persons p ON p.id = l.person_id
		WHERE l.status = ?
		ORDER BY l.start_date ASC, l.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, entity.LeaveStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}
	defer rows.Close()

	var intervals []entity.LeaveInterval
	for rows.Next() {
		var (
			interval   entity.LeaveInterval
			start, end string
		)
		if err := rows.Scan(&interval.PersonID, &interval.PersonName, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave: %w", err)
		}
		if interval.Start, err = parseDate(start); err != nil {
			return nil, err
		}
		if interval.End, err = parseDate(end); err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approved leave: %w", err)
	}

	return intervals, nil
}

// CancelExpiredPending cancels pending requests that started before today.
// An empty personID sweeps every person.
func (r *leaveRepo) CancelExpiredPending(ctx context.Context, personID string, today time.Time, decidedAt time.Time) (int64, error) {
	query := `
		UPDATE leave_requests
		SET status = ?, decided_at = ?
		WHERE status = ? AND start_date < ? AND (? = '' OR person_id = ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entity.LeaveStatusCanceled,
		decidedAt,
		entity.LeaveStatusPending,
		formatDate(today),
		personID,
		personID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel expired leave requests: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *leaveRepo) CountExpiredPending(ctx context.Context, personID string, today time.Time) (int64, error) {
	query := `
		SELECT COUNT(1)
		FROM leave_requests
		WHERE status = ? AND start_date < ? AND (? = '' OR person_id = ?)
	`

	var count int64
	err := r.db.QueryRowContext(ctx, query, entity.LeaveStatusPending, formatDate(today), personID, personID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired leave requests: %w", err)
	}

	return count, nil
}

// DeleteCanceledBefore purges canceled requests decided before cutoff.
func (r *leaveRepo) DeleteCanceledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM leave_requests
		WHERE status = ? AND COALESCE(decided_at, created_at) < ?
	`

	result, err := r.db.ExecContext(ctx, query, entity.LeaveStatusCanceled, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge canceled leave requests: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func scanLeave(row scanner) (*entity.LeaveRequest, error) {
	var (
		request    entity.LeaveRequest
		start, end string
		decidedAt  sql.NullTime
	)

	err := row.Scan(
		&request.ID,
		&request.PersonID,
		&request.PersonName,
		&start,
		&end,
		&request.Status,
		&request.Note,
		&request.DecidedBy,
		&decidedAt,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if request.StartDate, err = parseDate(start); err != nil {
		return nil, err
	}
	if request.EndDate, err = parseDate(end); err != nil {
		return nil, err
	}
	if decidedAt.Valid {
		decided := decidedAt.Time
		request.DecidedAt = &decided
	}

	return &request, nil
}
