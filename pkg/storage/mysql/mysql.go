package mysql

import (
	"database/sql"

	driverMysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/dsn"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

type driver struct{}

func (m *driver) IsSupported(s string) bool {
	d, err := dsn.Parse(s)
	if err != nil {
		return false
	}

	return d.Type == "mysql"
}

func (m *driver) NewConnection(opts storage.ConnOpts) (storage.Store, error) {
	d, err := dsn.Parse(opts.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse mysql dsn")
	}
	d.Type = ""
	// go-sql-driver reads a bare address as the network name
	if d.Protocol == "" && d.Address != "" {
		d.Protocol = "tcp"
	}

	cfg, err := driverMysql.ParseDSN(d.String())
	if err != nil {
		return nil, errors.Wrap(err, "could not parse mysql dsn")
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
		cfg.WriteTimeout = opts.Timeout
	}

	conn, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, "could not open mysql connection")
	}

	conn.SetMaxOpenConns(opts.MaxConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(opts.MaxConnLifetime)

	return NewStore(conn, opts.BatchSize), nil
}

func init() {
	storage.Register("mysql", &driver{})
}
