package postgres

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

type driver struct{}

func (m *driver) IsSupported(dsn string) bool {
	return strings.HasPrefix(strings.ToLower(dsn), "postgres://")
}

func (m *driver) NewConnection(opts storage.ConnOpts) (storage.Store, error) {
	conn, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "could not open postgres connection")
	}

	conn.SetMaxOpenConns(opts.MaxConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(opts.MaxConnLifetime)

	return NewStore(conn), nil
}

func init() {
	storage.Register("postgres", &driver{})
}
