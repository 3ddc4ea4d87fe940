package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hellofresh/catalog-seeder/pkg/database"
)

type (
	// Driver is a driver interface used to support multiple drivers
	Driver interface {
		IsSupported(dsn string) bool
		NewConnection(ConnOpts) (Store, error)
	}

	// A Store writes seeded sets to their destination.
	Store interface {
		// Save writes every row of the set to the set's table.
		Save(ctx context.Context, set *database.Set) error
		// Close closes the store resources and releases them.
		Close() error
	}

	// Hooker are the actions you perform before or after all sets are saved.
	Hooker interface {
		// PreSave performs an action before any set is saved.
		PreSave(ctx context.Context, tables []string) error
		// PostSave performs an action after every set was saved.
		PostSave(ctx context.Context, tables []string) error
	}

	// ConnOpts are the options to create a connection
	ConnOpts struct {
		DSN             string
		Timeout         time.Duration
		MaxConnLifetime time.Duration
		MaxConns        int
		MaxIdleConns    int
		// BatchSize is the amount of rows written per statement.
		BatchSize int
	}
)

// DefaultBatchSize is used when ConnOpts.BatchSize is not set.
const DefaultBatchSize = 100

// NewStore is a factory method that will create a store based on the provided DSN
func NewStore(opts ConnOpts) (store Store, err error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	drivers.Range(func(key, value interface{}) bool {
		driver, ok := value.(Driver)
		if !ok || !driver.IsSupported(opts.DSN) {
			return true
		}
		log.WithField("driver", key).Debug("found driver")

		store, err = driver.NewConnection(opts)
		return false
	})

	if store == nil && err == nil {
		err = errors.New("no supported driver found")
	}

	return store, errors.Wrapf(err, "could not create store for dsn: '%v'", opts.DSN)
}

// Batches splits rows into chunks of at most size rows.
func Batches(rows []database.Row, size int) [][]database.Row {
	if size <= 0 {
		size = DefaultBatchSize
	}

	batches := make([][]database.Row, 0, (len(rows)+size-1)/size)
	for size < len(rows) {
		rows, batches = rows[size:], append(batches, rows[:size])
	}
	if len(rows) > 0 {
		batches = append(batches, rows)
	}

	return batches
}
