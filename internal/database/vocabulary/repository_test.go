package vocabulary

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_vocabulary_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.User{},
		&entities.UserWord{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestWord(t *testing.T, db *gorm.DB, english, french string) {
	require.NoError(t, db.Create(&entities.Word{English: english, French: french}).Error)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	user := &entities.User{Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRepository_BulkAdd(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")

	added, terms, err := repo.BulkAdd([]Pair{
		{English: " flower ", French: " fleur "},
		{English: "tree", French: "arbre"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"fleur", "arbre"}, terms)

	// Terms were trimmed before insert
	var word entities.Word
	require.NoError(t, db.Where("english = ?", "flower").First(&word).Error)
	assert.Equal(t, "fleur", word.French)

	// Existing users got a gray state row per term
	var states []entities.UserWord
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("english").Find(&states).Error)
	require.Len(t, states, 2)
	assert.Equal(t, entities.ColorGray, states[0].Color)
	assert.Equal(t, entities.ColorGray, states[1].Color)
}

func TestRepository_BulkAdd_IgnoresDuplicatesAndBlanks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestWord(t, db, "cat", "chat")

	added, _, err := repo.BulkAdd([]Pair{
		{English: "cat", French: "minou"},
		{English: "  ", French: "vide"},
		{English: "dog", French: "chien"},
	})

	require.NoError(t, err)
	// The reported count is the submitted count, not the inserted count
	assert.Equal(t, 3, added)

	var count int64
	db.Model(&entities.Word{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// The original translation survived the duplicate import
	var word entities.Word
	require.NoError(t, db.Where("english = ?", "cat").First(&word).Error)
	assert.Equal(t, "chat", word.French)
}

func TestRepository_EnsureUserStates(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestWord(t, db, "cat", "chat")
	createTestWord(t, db, "dog", "chien")
	user := createTestUser(t, db, "alice")

	require.NoError(t, repo.EnsureUserStates(user.ID))
	// Running again must not duplicate rows
	require.NoError(t, repo.EnsureUserStates(user.ID))

	var count int64
	db.Model(&entities.UserWord{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestRepository_CountColors(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	for i, color := range []entities.Color{
		entities.ColorGreen, entities.ColorGreen, entities.ColorRed, entities.ColorGray,
	} {
		require.NoError(t, db.Create(&entities.UserWord{
			UserID:  user.ID,
			English: string(rune('a' + i)),
			Color:   color,
		}).Error)
	}

	counts, err := repo.CountColors(user.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Green)
	assert.Equal(t, int64(0), counts.Amber)
	assert.Equal(t, int64(1), counts.Red)
	assert.Equal(t, int64(1), counts.Gray)

	// Counts sum to the user's total state rows
	var total int64
	db.Model(&entities.UserWord{}).Where("user_id = ?", user.ID).Count(&total)
	assert.Equal(t, total, counts.Green+counts.Amber+counts.Red+counts.Gray)
}

func TestRepository_CountColors_NoUser(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	counts, err := repo.CountColors(0)

	require.NoError(t, err)
	assert.Equal(t, ColorCounts{}, counts)
}

func TestRepository_RandomWords(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	words := map[string]string{
		"cat": "chat", "dog": "chien", "house": "maison",
		"apple": "pomme", "book": "livre", "car": "voiture", "sun": "soleil",
	}
	for english, french := range words {
		createTestWord(t, db, english, french)
	}
	require.NoError(t, repo.EnsureUserStates(user.ID))

	result, err := repo.RandomWords(user.ID, "", 5)

	require.NoError(t, err)
	assert.Len(t, result, 5)
	for _, w := range result {
		assert.Equal(t, words[w.English], w.French)
	}
}

func TestRepository_RandomWords_ColorFilter(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	createTestWord(t, db, "cat", "chat")
	createTestWord(t, db, "dog", "chien")
	require.NoError(t, repo.EnsureUserStates(user.ID))
	require.NoError(t, repo.SetColor(user.ID, "cat", entities.ColorGreen))

	result, err := repo.RandomWords(user.ID, "green", 5)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "cat", result[0].English)
	assert.Equal(t, entities.ColorGreen, result[0].Color)
}

func TestRepository_RandomWords_NoUser(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	result, err := repo.RandomWords(0, "", 5)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRepository_Grade_CorrectIsCaseAndSpaceInsensitive(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	createTestWord(t, db, "cat", "chat")
	require.NoError(t, repo.EnsureUserStates(user.ID))

	correct, answer, err := repo.Grade(user.ID, " Cat ", "CHAT")

	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, "chat", answer)

	var state entities.UserWord
	require.NoError(t, db.Where("user_id = ? AND english = ?", user.ID, "cat").First(&state).Error)
	assert.Equal(t, entities.ColorGreen, state.Color)
}

func TestRepository_Grade_Incorrect(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	createTestWord(t, db, "cat", "chat")
	require.NoError(t, repo.EnsureUserStates(user.ID))

	correct, answer, err := repo.Grade(user.ID, "cat", "chien")

	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, "chat", answer)

	var state entities.UserWord
	require.NoError(t, db.Where("user_id = ? AND english = ?", user.ID, "cat").First(&state).Error)
	assert.Equal(t, entities.ColorRed, state.Color)
}

func TestRepository_Grade_UnknownTerm(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	createTestWord(t, db, "cat", "chat")
	require.NoError(t, repo.EnsureUserStates(user.ID))

	correct, answer, err := repo.Grade(user.ID, "xylophone", "xylophone")

	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, UnknownAnswer, answer)

	// No state row was touched
	var state entities.UserWord
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&state).Error)
	assert.Equal(t, entities.ColorGray, state.Color)
}

func TestRepository_SetColor(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "alice")
	createTestWord(t, db, "cat", "chat")
	require.NoError(t, repo.EnsureUserStates(user.ID))

	require.NoError(t, repo.SetColor(user.ID, "cat", entities.ColorAmber))

	var state entities.UserWord
	require.NoError(t, db.Where("user_id = ? AND english = ?", user.ID, "cat").First(&state).Error)
	assert.Equal(t, entities.ColorAmber, state.Color)
}

func TestRepository_FrenchFor(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestWord(t, db, "cat", "chat")

	french, err := repo.FrenchFor(" CAT ")
	require.NoError(t, err)
	assert.Equal(t, "chat", french)

	_, err = repo.FrenchFor("xylophone")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
