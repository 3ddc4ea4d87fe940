package alterer

import (
	"testing"

	"github.com/icrowley/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id   int
	name string
}

func byID(r *record) int { return r.id }

func fixture() []*record {
	return []*record{
		{id: 1, name: "A"},
		{id: 2, name: "B"},
		{id: 3, name: "C"},
	}
}

func TestEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scenario string
		function func(*testing.T, []*record)
	}{
		{
			scenario: "when an existing key is altered",
			function: testAlterExistingKey,
		},
		{
			scenario: "when a missing key is altered",
			function: testAlterMissingKey,
		},
		{
			scenario: "when an existing key is removed",
			function: testRemoveExistingKey,
		},
		{
			scenario: "when a missing key is removed",
			function: testRemoveMissingKey,
		},
		{
			scenario: "when alter and remove are chained",
			function: testChain,
		},
		{
			scenario: "when the mutator changes the key field",
			function: testAlterDoesNotRekey,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.scenario, func(t *testing.T) {
			test.function(t, fixture())
		})
	}
}

func testAlterExistingKey(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	calls := 0
	idx.Alter(2, func(r *record) {
		calls++
		r.name = "B2"
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, []*record{{id: 1, name: "A"}, {id: 2, name: "B2"}, {id: 3, name: "C"}}, records)
	assert.NoError(t, idx.Err())
}

func testAlterMissingKey(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	idx.Alter(42, func(r *record) {
		assert.FailNow(t, "mutator called for a missing key")
	})

	assert.Equal(t, fixture(), records)
	assert.NoError(t, idx.Err())
}

func testRemoveExistingKey(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	idx.Remove(2)
	require.Len(t, records, 2)
	assert.Equal(t, 2, idx.Len())

	idx.Alter(2, func(r *record) {
		assert.FailNow(t, "removed record is still reachable")
	})
	assert.Equal(t, []*record{{id: 1, name: "A"}, {id: 3, name: "C"}}, records)
}

func testRemoveMissingKey(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	idx.Remove(42)
	assert.Equal(t, fixture(), records)
	assert.NoError(t, idx.Err())
}

func testChain(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	idx.Alter(2, func(r *record) { r.name = "B2" }).Remove(1)

	assert.Equal(t, []*record{{id: 2, name: "B2"}, {id: 3, name: "C"}}, records)
}

func testAlterDoesNotRekey(t *testing.T, records []*record) {
	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	idx.Alter(1, func(r *record) { r.id = 10 })
	idx.Alter(10, func(r *record) {
		assert.FailNow(t, "index was re-keyed")
	})
	idx.Remove(1)

	assert.Equal(t, []*record{{id: 2, name: "B"}, {id: 3, name: "C"}}, records)
}

func TestNewEntitiesDuplicateKey(t *testing.T) {
	records := append(fixture(), &record{id: 2, name: "B again"})

	idx, err := NewEntities(&records, byID)
	require.Error(t, err)
	assert.Nil(t, idx)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 2, dupErr.Key)
}

func TestEntitiesStrict(t *testing.T) {
	records := fixture()

	idx, err := NewEntities(&records, byID, Strict())
	require.NoError(t, err)

	idx.Alter(7, func(*record) {}).Remove(8).Alter(1, func(r *record) { r.name = "A2" })

	err = idx.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "alter 7")
	assert.Contains(t, err.Error(), "remove 8")
	assert.Equal(t, "A2", records[0].name)
}

func TestEntitiesPreservesOrder(t *testing.T) {
	fake.Seed(1)

	records := make([]*record, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, &record{id: i, name: fake.ProductName()})
	}
	expected := make([]*record, 0, 25)
	for _, r := range records {
		if r.id%2 == 1 {
			expected = append(expected, r)
		}
	}

	idx, err := NewEntities(&records, byID)
	require.NoError(t, err)

	for i := 0; i < 50; i += 2 {
		idx.Remove(i)
	}

	assert.Equal(t, expected, records)
}
