package entities

import (
	"fmt"
	"time"
)

// Color is the mastery label attached to a user/word pair.
type Color string

const (
	ColorGray  Color = "gray"  // never answered
	ColorGreen Color = "green" // last answer was correct
	ColorAmber Color = "amber" // flagged for review via manual override
	ColorRed   Color = "red"   // last answer was wrong
)

// ParseColor validates a color label. Only the four known labels are
// accepted; anything else is rejected rather than stored verbatim.
func ParseColor(s string) (Color, error) {
	switch c := Color(s); c {
	case ColorGray, ColorGreen, ColorAmber, ColorRed:
		return c, nil
	default:
		return "", fmt.Errorf("unknown color %q", s)
	}
}

// Colors lists all valid labels in display order.
func Colors() []Color {
	return []Color{ColorGreen, ColorAmber, ColorRed, ColorGray}
}

// Word is a global English/French translation pair. Words are created by
// seeding or bulk import and are never updated or deleted.
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	English   string    `gorm:"uniqueIndex;size:256" json:"english"`
	French    string    `gorm:"size:256" json:"french"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserWord tracks one user's mastery of one word. The composite unique
// index guarantees at most one row per (user, english) pair.
type UserWord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_english" json:"user_id"`
	English   string    `gorm:"uniqueIndex:idx_user_english;size:256" json:"english"`
	Color     Color     `gorm:"size:16;default:gray" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
