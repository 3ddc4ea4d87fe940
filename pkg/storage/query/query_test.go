package query

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/catalog-seeder/pkg/database"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		dsn    string
		writer io.Writer
	}{
		{dsn: "os://stdout/", writer: os.Stdout},
		{dsn: "os://stderr/", writer: os.Stderr},
	}

	for _, test := range tests {
		w, err := getOutputWriter(test.dsn)
		require.NoError(t, err)
		assert.Equal(t, test.writer, w)
	}

	_, err := getOutputWriter("os://printer/")
	assert.Error(t, err)

	_, err = getOutputWriter("ftp://somewhere/")
	assert.Error(t, err)
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()

	store, err := (&driver{}).NewConnection(storageOpts("file://" + dir + "/seed.sql"))
	require.NoError(t, err)

	set := database.NewSet("manufacturers", "name")
	set.Add(database.Row{"name": "Nike"})
	require.NoError(t, store.Save(context.Background(), set))
	require.NoError(t, store.Close())

	content, err := os.ReadFile(filepath.Join(dir, "seed.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "'Nike'")
}

func TestIsSupported(t *testing.T) {
	d := &driver{}
	assert.True(t, d.IsSupported("os://stdout/"))
	assert.True(t, d.IsSupported("file:///tmp/seed.sql"))
	assert.False(t, d.IsSupported("postgres://localhost:5432/catalog"))
	assert.False(t, d.IsSupported(""))
}

func TestSave(t *testing.T) {
	var buf bytes.Buffer
	store := NewStore(&buf)

	set := database.NewSet("manufacturers", "name", "published", "display_order")
	set.Add(database.Row{"name": "O'Reilly", "published": true, "display_order": 1})
	set.Add(database.Row{"name": "Nike", "published": false, "display_order": 2})

	require.NoError(t, store.Save(context.Background(), set))
	require.NoError(t, store.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "INSERT INTO manufacturers"))
	assert.Contains(t, lines[0], "('O''Reilly','true','1')")
	assert.Contains(t, lines[1], "('Nike','false','2')")
	assert.True(t, strings.HasSuffix(lines[1], ";"))
}

func storageOpts(dsn string) storage.ConnOpts {
	return storage.ConnOpts{DSN: dsn}
}
