package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	personRepo contract.PersonRepo
	leaveRepo  contract.LeaveRepo
	rosterRepo contract.RosterRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		personRepo: newPersonRepo(db),
		leaveRepo:  newLeaveRepo(db),
		rosterRepo: newRosterRepo(db),
	}
}

func (i *instance) Person() contract.PersonRepo {
	return i.personRepo
}

func (i *instance) Leave() contract.LeaveRepo {
	return i.leaveRepo
}

func (i *instance) Roster() contract.RosterRepo {
	return i.rosterRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the running transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
