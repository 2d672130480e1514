package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hotel-api/internal/database"
)

// CreateTestDB opens a private in-memory libSQL database
func CreateTestDB(t *testing.T) (*sql.DB, func()) {
	db, err := database.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err, "failed to open in-memory database")

	cleanup := func() {
		_ = db.Close()
	}

	return db, cleanup
}
