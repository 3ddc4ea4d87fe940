package query

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/database"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

// textStore writes the sets as INSERT statements to a stream
type textStore struct {
	mu     sync.Mutex
	output io.Writer
}

// NewStore returns a store printing INSERT statements to output.
func NewStore(output io.Writer) storage.Store {
	return &textStore{output: output}
}

// Save renders the whole set before writing so concurrent sets never interleave.
func (s *textStore) Save(_ context.Context, set *database.Set) error {
	var buf bytes.Buffer
	for _, row := range set.Rows {
		columnMap, err := toSQLColumnMap(set, row)
		if err != nil {
			return errors.Wrapf(err, "could not convert row of %s", set.Table)
		}

		insert := sq.Insert(set.Table).Columns(set.Columns...).Values(columnMap...)
		buf.WriteString(sq.DebugSqlizer(insert))
		buf.WriteString(";\n")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := buf.WriteTo(s.output)
	return errors.Wrap(err, "could not write statements")
}

// Close closes the output if it can be closed. Standard streams are left open.
func (s *textStore) Close() error {
	if s.output == os.Stdout || s.output == os.Stderr {
		return nil
	}

	closer, ok := s.output.(io.WriteCloser)
	if !ok {
		return nil
	}

	return closer.Close()
}

// toSQLColumnMap renders the row values as quoted SQL literals in column order.
func toSQLColumnMap(set *database.Set, row database.Row) ([]interface{}, error) {
	values := set.Values(row)
	for i, value := range values {
		str, err := database.ToSQLStringValue(value)
		if err != nil {
			return nil, errors.Wrapf(err, "column %s", set.Columns[i])
		}
		values[i] = strings.ReplaceAll(str, "'", "''")
	}

	return values, nil
}
