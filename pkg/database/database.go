package database

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type (
	// Row is a single record ready to be written, keyed by column name.
	Row map[string]interface{}

	// Set is an ordered collection of rows that belong to the same table.
	Set struct {
		Table   string
		Columns []string
		Rows    []Row
	}
)

// NewSet creates an empty set for the given table and columns.
func NewSet(table string, columns ...string) *Set {
	return &Set{
		Table:   table,
		Columns: columns,
		Rows:    make([]Row, 0),
	}
}

// Add appends a row to the set.
func (s *Set) Add(row Row) {
	s.Rows = append(s.Rows, row)
}

// Values returns the row values in column order.
func (s *Set) Values(row Row) []interface{} {
	values := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		values[i] = row[col]
	}

	return values
}

// ToSQLStringValue renders a value the way it should appear in a plain text dump.
func ToSQLStringValue(src interface{}) (string, error) {
	switch value := src.(type) {
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(value), nil
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	case time.Time:
		return value.Format(time.RFC3339), nil
	case []string:
		return fmt.Sprintf("%q", value), nil
	case nil:
		return "NULL", nil
	case *interface{}:
		if value == nil {
			return "NULL", nil
		}
		return ToSQLStringValue(*value)
	default:
		return "", errors.Errorf("could not parse type %T", src)
	}
}
