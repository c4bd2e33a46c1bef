package http

import (
	"github.com/pawandazzler/french-vocab-anki/internal/audio"
	"github.com/pawandazzler/french-vocab-anki/internal/auth"
	"github.com/pawandazzler/french-vocab-anki/internal/database"
	"github.com/pawandazzler/french-vocab-anki/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	Database *database.Database

	// Stores backing the controllers
	WordStore        WordStore
	LoginStore       LoginStore
	TranslationStore TranslationStore

	// Session handling and identity resolution
	SessionManager *auth.SessionManager
	AuthMiddleware *auth.Middleware

	// Pronunciation audio
	AudioCache *audio.Cache

	// Background prewarm (optional)
	TaskClient *tasks.Client

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
