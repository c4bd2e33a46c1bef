package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

func newTestDatabase(t *testing.T) (*Database, string, func()) {
	t.Helper()
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, dbPath, cleanup
}

func TestNewDatabaseSeedsVocabulary(t *testing.T) {
	db, _, cleanup := newTestDatabase(t)
	defer cleanup()

	var count int64
	db.DB.Model(&entities.Word{}).Count(&count)
	assert.Equal(t, int64(len(defaultWords)), count)

	var word entities.Word
	require.NoError(t, db.DB.Where("english = ?", "cat").First(&word).Error)
	assert.Equal(t, "chat", word.French)
}

func TestSeedingIsIdempotent(t *testing.T) {
	db, dbPath, cleanup := newTestDatabase(t)
	defer cleanup()

	// User edits survive a restart
	require.NoError(t, db.DB.Model(&entities.Word{}).
		Where("english = ?", "cat").
		Update("french", "minou").Error)
	require.NoError(t, db.Close())

	db2, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db2.Close()

	var count int64
	db2.DB.Model(&entities.Word{}).Count(&count)
	assert.Equal(t, int64(len(defaultWords)), count)

	var word entities.Word
	require.NoError(t, db2.DB.Where("english = ?", "cat").First(&word).Error)
	assert.Equal(t, "minou", word.French)
}
