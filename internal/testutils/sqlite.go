package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/storage/sqlite"
)

// CreateTestSQLite opens a migrated database in a temp dir, closed on cleanup
func CreateTestSQLite(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err, "failed to open sqlite")

	t.Cleanup(func() { _ = db.Close() })
	return db
}
