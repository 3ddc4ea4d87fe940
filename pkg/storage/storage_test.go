package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/catalog-seeder/pkg/database"
)

type mockDriver struct{}

func (d *mockDriver) IsSupported(dsn string) bool { return strings.HasPrefix(dsn, "mock://") }
func (d *mockDriver) NewConnection(opts ConnOpts) (Store, error) {
	return &mockStore{opts: opts}, nil
}

type mockStore struct {
	opts ConnOpts
}

func (s *mockStore) Save(context.Context, *database.Set) error { return nil }
func (s *mockStore) Close() error                              { return nil }

func init() {
	Register("mock", &mockDriver{})
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(ConnOpts{DSN: "mock://local/"})
	require.NoError(t, err)
	require.IsType(t, &mockStore{}, store)
	assert.Equal(t, DefaultBatchSize, store.(*mockStore).opts.BatchSize)

	_, err = NewStore(ConnOpts{DSN: "oracle://nope/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported driver found")
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Contains(t, Drivers(), "mock")
	assert.Panics(t, func() { Register("mock", &mockDriver{}) })
	assert.Panics(t, func() { Register("nil", nil) })
}

func TestBatches(t *testing.T) {
	rows := make([]database.Row, 5)

	batches := Batches(rows, 2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)

	assert.Len(t, Batches(rows, 5), 1)
	assert.Empty(t, Batches(nil, 5))
}
