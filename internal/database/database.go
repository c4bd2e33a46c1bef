package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

// defaultWords is the bootstrap vocabulary inserted on first start.
var defaultWords = []entities.Word{
	{English: "cat", French: "chat"},
	{English: "dog", French: "chien"},
	{English: "house", French: "maison"},
	{English: "apple", French: "pomme"},
	{English: "book", French: "livre"},
	{English: "car", French: "voiture"},
	{English: "table", French: "table"},
	{English: "water", French: "eau"},
	{English: "bread", French: "pain"},
	{English: "sun", French: "soleil"},
	{English: "moon", French: "lune"},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.User{},
		&entities.UserWord{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedWords(); err != nil {
		return nil, fmt.Errorf("failed to seed vocabulary: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedWords inserts the bootstrap vocabulary, leaving existing pairs
// untouched. Safe to run on every start.
func (d *Database) seedWords() error {
	for _, word := range defaultWords {
		err := d.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&entities.Word{
			English: word.English,
			French:  word.French,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to seed word %s: %w", word.English, err)
		}
	}
	return nil
}
