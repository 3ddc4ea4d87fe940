package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQLStringValue(t *testing.T) {
	var iface interface{} = "wrapped"

	tests := []struct {
		scenario string
		value    interface{}
		expected string
	}{
		{scenario: "int", value: 42, expected: "42"},
		{scenario: "int64", value: int64(-7), expected: "-7"},
		{scenario: "float", value: 12.5, expected: "12.5"},
		{scenario: "bool", value: true, expected: "true"},
		{scenario: "string", value: "DE", expected: "DE"},
		{scenario: "bytes", value: []byte("raw"), expected: "raw"},
		{scenario: "time", value: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), expected: "2020-01-02T03:04:05Z"},
		{scenario: "nil", value: nil, expected: "NULL"},
		{scenario: "pointer to interface", value: &iface, expected: "wrapped"},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			actual, err := ToSQLStringValue(test.value)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}

	_, err := ToSQLStringValue(struct{}{})
	assert.Error(t, err)
}

func TestSetValues(t *testing.T) {
	set := NewSet("countries", "name", "code")
	set.Add(Row{"code": "DE", "name": "Germany"})

	require.Len(t, set.Rows, 1)
	assert.Equal(t, []interface{}{"Germany", "DE"}, set.Values(set.Rows[0]))
}
