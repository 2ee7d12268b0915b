package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/template-insights/internal/config"
)

func newTestStore(t *testing.T) *Store {
	s, err := New(config.StorageConfig{LocalPath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestSaveExport(t *testing.T) {
	s := newTestStore(t)

	id := uuid.New()
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	name, err := s.SaveExport(id, []byte(`{"overall":{}}`), at)
	require.NoError(t, err)

	assert.Equal(t, "report-20260829-120000-"+id.String()+".json", name)

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall":{}}`, string(data))
}

func TestListExports(t *testing.T) {
	s := newTestStore(t)

	names, err := s.ListExports()
	require.NoError(t, err)
	assert.Empty(t, names)

	older := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	_, err = s.SaveExport(uuid.New(), []byte("{}"), older)
	require.NoError(t, err)
	newest, err := s.SaveExport(uuid.New(), []byte("{}"), newer)
	require.NoError(t, err)

	names, err = s.ListExports()
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, newest, names[0])
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	_, err := New(config.StorageConfig{LocalPath: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
