package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

const personColumns = `id, full_name, department, is_active, created_at, updated_at`

type personRepo struct {
	db dbConn
}

func newPersonRepo(db dbConn) contract.PersonRepo {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, person *entity.Person) error {
	query := `
		INSERT INTO persons (id, full_name, department, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	if person.CreatedAt.IsZero() {
		person.CreatedAt = now
	}
	person.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.FullName,
		person.Department,
		person.IsActive,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

func (r *personRepo) Update(ctx context.Context, person *entity.Person) error {
	query := `
		UPDATE persons
		SET full_name = ?, department = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`

	person.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		person.FullName,
		person.Department,
		person.IsActive,
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	return nil
}

func (r *personRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return nil
}

func (r *personRepo) GetByID(ctx context.Context, id string) (*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = ?`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

func (r *personRepo) GetByFullName(ctx context.Context, fullName string) (*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE full_name = TRIM(?) COLLATE NOCASE
		ORDER BY created_at ASC, rowid ASC
		LIMIT 1
	`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, fullName))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return person, nil
}

func (r *personRepo) List(ctx context.Context) ([]*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons ORDER BY created_at ASC, rowid ASC`

	return r.list(ctx, query)
}

// ListActiveByDepartment returns the department's active members in directory order,
// which is the rotation order used by the builder and the resolver.
func (r *personRepo) ListActiveByDepartment(ctx context.Context, department entity.Department) ([]*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE department = ? AND is_active = 1
		ORDER BY created_at ASC, rowid ASC
	`

	return r.list(ctx, query, department)
}

func (r *personRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}
	defer rows.Close()

	var persons []*entity.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return persons, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (*entity.Person, error) {
	person := &entity.Person{}
	err := row.Scan(
		&person.ID,
		&person.FullName,
		&person.Department,
		&person.IsActive,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return person, nil
}
