package query

import (
	"io"
	"os"
	"path/filepath"

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

	return d.Type == "os" || d.Type == "file"
}

func (m *driver) NewConnection(opts storage.ConnOpts) (storage.Store, error) {
	w, err := getOutputWriter(opts.DSN)
	if err != nil {
		return nil, err
	}

	return NewStore(w), nil
}

func getOsWriter(address string) (io.Writer, error) {
	switch address {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, errors.Errorf("unknown os writer: %v", address)
	}
}

func getOutputWriter(s string) (io.Writer, error) {
	d, err := dsn.Parse(s)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case "os":
		return getOsWriter(d.Address)
	case "file":
		f, err := os.Create(filepath.Join(d.Address, d.DataSource))
		if err != nil {
			return nil, errors.Wrap(err, "could not create output file")
		}
		return f, nil
	default:
		return nil, errors.Errorf("unknown output writer type: %v", d.Type)
	}
}

func init() {
	storage.Register("query", &driver{})
}
