// Package alterer indexes freshly built seed collections so single members can be
// altered or removed by key before the collection is persisted.
package alterer

// Entities is a keyed view over a slice of records.
// Alter and Remove work on the original slice, the view never inserts records.
type Entities[T any, K comparable] struct {
	records *[]*T
	index   map[K]*T
	opts    options
	err     error
}

// NewEntities indexes records by keyOf. It fails with a DuplicateKeyError
// when two records share a key.
func NewEntities[T any, K comparable](records *[]*T, keyOf func(*T) K, opts ...Option) (*Entities[T, K], error) {
	index := make(map[K]*T, len(*records))
	for _, record := range *records {
		key := keyOf(record)
		if _, dup := index[key]; dup {
			return nil, &DuplicateKeyError{Key: key}
		}

		index[key] = record
	}

	return &Entities[T, K]{
		records: records,
		index:   index,
		opts:    newOptions(opts),
	}, nil
}

// Alter applies mutate to the record indexed under key.
// The record is not re-keyed if mutate changes the fields the key derives from.
func (e *Entities[T, K]) Alter(key K, mutate func(*T)) *Entities[T, K] {
	record, ok := e.index[key]
	if !ok {
		e.err = e.opts.miss(e.err, "alter", key)
		return e
	}

	mutate(record)
	return e
}

// Remove drops the record indexed under key from the index and from the backing slice.
func (e *Entities[T, K]) Remove(key K) *Entities[T, K] {
	record, ok := e.index[key]
	if !ok {
		e.err = e.opts.miss(e.err, "remove", key)
		return e
	}

	delete(e.index, key)

	records := *e.records
	for i, r := range records {
		if r != record {
			continue
		}

		copy(records[i:], records[i+1:])
		records[len(records)-1] = nil
		*e.records = records[:len(records)-1]
		break
	}

	return e
}

// Len returns the number of indexed records.
func (e *Entities[T, K]) Len() int {
	return len(e.index)
}

// Err returns every miss recorded under the strict policy.
func (e *Entities[T, K]) Err() error {
	return e.err
}
