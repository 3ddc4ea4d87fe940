package mysql

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hellofresh/catalog-seeder/pkg/database"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

type store struct {
	conn      *sql.DB
	batchSize int
}

// NewStore returns a store writing to a mysql database.
func NewStore(conn *sql.DB, batchSize int) storage.Store {
	return &store{conn: conn, batchSize: batchSize}
}

// Save inserts the set in a single transaction, batchSize rows per statement.
func (s *store) Save(ctx context.Context, set *database.Set) error {
	txn, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to open transaction")
	}

	inserted, err := s.insert(ctx, txn, set)
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

// Close closes the mysql database connection.
func (s *store) Close() error {
	return errors.Wrap(s.conn.Close(), "failed to close mysql connection")
}

func (s *store) insert(ctx context.Context, txn *sql.Tx, set *database.Set) (int64, error) {
	columns := make([]string, len(set.Columns))
	for i, col := range set.Columns {
		columns[i] = quoteIdentifier(col)
	}

	var inserted int64
	for _, batch := range storage.Batches(set.Rows, s.batchSize) {
		query := sq.Insert(quoteIdentifier(set.Table)).Columns(columns...)
		for _, row := range batch {
			query = query.Values(set.Values(row)...)
		}

		res, err := query.RunWith(txn).ExecContext(ctx)
		if err != nil {
			return inserted, err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return inserted, err
		}
		inserted += n
	}

	return inserted, nil
}

func quoteIdentifier(name string) string {
	return fmt.Sprintf("`%s`", name)
}
