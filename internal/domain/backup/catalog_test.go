package backup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCatalog(t *testing.T) {
	catalog, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer catalog.Close()

	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, catalog.Record(ctx, Event{
		Action: ActionCreate, Filename: "backup_20240501_080000.tar.gz", Actor: "admin", Success: true, CreatedAt: base,
	}))
	require.NoError(t, catalog.Record(ctx, Event{
		Action: ActionRestore, Filename: "backup_20240501_080000.tar.gz", Actor: "admin", Success: false,
		Detail: "pg_restore: exit code 1", CreatedAt: base.Add(time.Hour),
	}))

	events, err := catalog.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, ActionRestore, events[0].Action)
	assert.False(t, events[0].Success)
	assert.Equal(t, "pg_restore: exit code 1", events[0].Detail)
	assert.True(t, base.Add(time.Hour).Equal(events[0].CreatedAt))

	assert.Equal(t, ActionCreate, events[1].Action)
	assert.True(t, events[1].Success)

	limited, err := catalog.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
