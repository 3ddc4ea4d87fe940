package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hellofresh/catalog-seeder/pkg/database"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

type store struct {
	conn *sql.DB
}

// NewStore returns a store writing to a postgres database.
func NewStore(conn *sql.DB) storage.Store {
	return &store{conn: conn}
}

// Save copies the set into its table in a single transaction.
func (s *store) Save(ctx context.Context, set *database.Set) error {
	txn, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to open transaction")
	}

	inserted, err := s.copyIn(ctx, txn, set)
	if err != nil {
		if rbErr := txn.Rollback(); rbErr != nil {
			log.WithError(rbErr).Error("failed to rollback")
		}
		return errors.Wrap(err, "failed to insert rows")
	}

	log.WithFields(log.Fields{
		"table":    set.Table,
		"inserted": inserted,
	}).Debug("inserted rows")

	return errors.Wrap(txn.Commit(), "failed to commit transaction")
}

// PreSave disables triggers on all tables to avoid foreign key constraints
func (s *store) PreSave(ctx context.Context, tables []string) error {
	// We can't use `SET session_replication_role = replica` because of the connection pool
	for _, tbl := range tables {
		query := fmt.Sprintf("ALTER TABLE %s DISABLE TRIGGER ALL", strconv.Quote(tbl))
		if _, err := s.conn.ExecContext(ctx, query); err != nil {
			return errors.Wrapf(err, "failed to disable triggers for %s", tbl)
		}
	}

	return nil
}

// PostSave enables triggers on all tables to enforce foreign key constraints
func (s *store) PostSave(ctx context.Context, tables []string) error {
	for _, tbl := range tables {
		query := fmt.Sprintf("ALTER TABLE %s ENABLE TRIGGER ALL", strconv.Quote(tbl))
		if _, err := s.conn.ExecContext(ctx, query); err != nil {
			return errors.Wrapf(err, "failed to enable triggers for %s", tbl)
		}
	}

	return nil
}

// Close closes the postgres database connection.
func (s *store) Close() error {
	return errors.Wrap(s.conn.Close(), "failed to close postgres connection")
}

func (s *store) copyIn(ctx context.Context, txn *sql.Tx, set *database.Set) (int64, error) {
	logger := log.WithFields(log.Fields{
		"table":   set.Table,
		"columns": set.Columns,
	})
	logger.Debug("preparing copy in")

	stmt, err := txn.PrepareContext(ctx, pq.CopyIn(set.Table, set.Columns...))
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare copy in")
	}

	defer func() {
		if err := stmt.Close(); err != nil {
			logger.WithError(err).Error("failed to close copy in statement")
		}
	}()

	var inserted int64
	for _, row := range set.Rows {
		if _, err := stmt.ExecContext(ctx, set.Values(row)...); err != nil {
			return inserted, errors.Wrap(err, "failed to copy in row")
		}
		inserted++
	}

	logger.Debug("executing copy in")
	if _, err := stmt.ExecContext(ctx); err != nil {
		return inserted, errors.Wrap(err, "failed to exec copy in")
	}

	return inserted, nil
}
