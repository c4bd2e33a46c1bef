// Package vocabulary provides database operations for word pairs and
// per-user word states.
//
// # Usage
//
//	repo := vocabulary.NewRepository(db)
//	words, err := repo.RandomWords(userID, "red", 5)
package vocabulary

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

// UnknownAnswer is returned by Grade when the quizzed term has no
// vocabulary entry. It is a defined result, not an error.
const UnknownAnswer = "unknown"

// Pair is an English/French term pair submitted for import.
type Pair struct {
	English string `json:"english"`
	French  string `json:"french"`
}

// QuizWord is a user's word state joined with its translation.
type QuizWord struct {
	English string         `json:"english"`
	French  string         `json:"french"`
	Color   entities.Color `json:"color"`
}

// ColorCounts holds the per-label row counts for one user.
type ColorCounts struct {
	Green int64 `json:"green"`
	Amber int64 `json:"amber"`
	Red   int64 `json:"red"`
	Gray  int64 `json:"gray"`
}

// Repository handles all vocabulary database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BulkAdd imports word pairs and fans out a gray state row to every
// existing user for each term. Pairs with a blank side are skipped,
// duplicates are ignored. Returns the number of pairs submitted (not the
// number actually inserted) and the French terms of the valid pairs.
func (r *Repository) BulkAdd(pairs []Pair) (int, []string, error) {
	valid := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		english := strings.TrimSpace(p.English)
		french := strings.TrimSpace(p.French)
		if english == "" || french == "" {
			continue
		}
		valid = append(valid, Pair{English: english, French: french})
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range valid {
			word := entities.Word{English: p.English, French: p.French}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&word).Error; err != nil {
				return err
			}
		}

		var userIDs []uint
		if err := tx.Model(&entities.User{}).Pluck("id", &userIDs).Error; err != nil {
			return err
		}

		for _, userID := range userIDs {
			for _, p := range valid {
				state := entities.UserWord{UserID: userID, English: p.English, Color: entities.ColorGray}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&state).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	french := make([]string, len(valid))
	for i, p := range valid {
		french[i] = p.French
	}
	return len(pairs), french, nil
}

// EnsureUserStates inserts a gray state row for every vocabulary word the
// user does not have one for yet.
func (r *Repository) EnsureUserStates(userID uint) error {
	return InitializeStatesFor(r.db, userID)
}

// InitializeStatesFor runs the state fan-out on an arbitrary transaction
// handle. The users repository calls this inside its login transaction so
// user creation and fan-out commit together.
func InitializeStatesFor(tx *gorm.DB, userID uint) error {
	var terms []string
	if err := tx.Model(&entities.Word{}).Pluck("english", &terms).Error; err != nil {
		return err
	}
	for _, term := range terms {
		state := entities.UserWord{UserID: userID, English: term, Color: entities.ColorGray}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&state).Error; err != nil {
			return err
		}
	}
	return nil
}

// CountColors returns the number of state rows per color for a user.
// A zero userID yields all-zero counts.
func (r *Repository) CountColors(userID uint) (ColorCounts, error) {
	var counts ColorCounts
	if userID == 0 {
		return counts, nil
	}

	for _, color := range entities.Colors() {
		var n int64
		err := r.db.Model(&entities.UserWord{}).
			Where("user_id = ? AND color = ?", userID, color).
			Count(&n).Error
		if err != nil {
			return ColorCounts{}, err
		}
		switch color {
		case entities.ColorGreen:
			counts.Green = n
		case entities.ColorAmber:
			counts.Amber = n
		case entities.ColorRed:
			counts.Red = n
		case entities.ColorGray:
			counts.Gray = n
		}
	}
	return counts, nil
}

// RandomWords returns up to limit quiz words for a user in random order,
// optionally restricted to one of red, amber or green. Any other filter
// value means no restriction. A zero userID yields an empty slice.
func (r *Repository) RandomWords(userID uint, colorFilter string, limit int) ([]QuizWord, error) {
	words := []QuizWord{}
	if userID == 0 {
		return words, nil
	}

	query := r.db.Table("user_words").
		Select("user_words.english, words.french, user_words.color").
		Joins("JOIN words ON words.english = user_words.english").
		Where("user_words.user_id = ?", userID)

	filter := strings.ToLower(strings.TrimSpace(colorFilter))
	switch filter {
	case "red", "amber", "green":
		query = query.Where("user_words.color = ?", filter)
	}

	err := query.Order("RANDOM()").Limit(limit).Scan(&words).Error
	return words, err
}

// Grade checks a submitted answer against the canonical translation.
// Lookup and comparison are case-insensitive after trimming both sides.
// An unknown term reports not-correct with the UnknownAnswer sentinel and
// mutates nothing.
func (r *Repository) Grade(userID uint, english, answer string) (bool, string, error) {
	english = strings.ToLower(strings.TrimSpace(english))
	answer = strings.ToLower(strings.TrimSpace(answer))

	var word entities.Word
	err := r.db.Where("LOWER(english) = ?", english).First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, UnknownAnswer, nil
	}
	if err != nil {
		return false, "", err
	}

	canonical := strings.ToLower(strings.TrimSpace(word.French))
	correct := answer == canonical

	color := entities.ColorRed
	if correct {
		color = entities.ColorGreen
	}
	err = r.db.Model(&entities.UserWord{}).
		Where("user_id = ? AND english = ?", userID, word.English).
		Update("color", color).Error
	if err != nil {
		return false, "", err
	}

	return correct, canonical, nil
}

// SetColor overwrites the label for a user/word pair. The color must
// already be validated via entities.ParseColor.
func (r *Repository) SetColor(userID uint, english string, color entities.Color) error {
	return r.db.Model(&entities.UserWord{}).
		Where("user_id = ? AND english = ?", userID, strings.TrimSpace(english)).
		Update("color", color).Error
}

// FrenchFor returns the translation for an English term, matched
// case-insensitively. Returns gorm.ErrRecordNotFound for unknown terms.
func (r *Repository) FrenchFor(english string) (string, error) {
	var word entities.Word
	err := r.db.Where("LOWER(english) = ?", strings.ToLower(strings.TrimSpace(english))).
		First(&word).Error
	if err != nil {
		return "", err
	}
	return word.French, nil
}

// AllFrenchTerms returns every French term in the vocabulary. Used by the
// audio prewarm task.
func (r *Repository) AllFrenchTerms() ([]string, error) {
	var terms []string
	err := r.db.Model(&entities.Word{}).Pluck("french", &terms).Error
	return terms, err
}
