// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, vocabulary seeding
//	├── vocabulary/      # Word pairs, per-user word states, quiz grading
//	└── users/           # User creation and lookup
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./vocab.db")
//
//	// Create domain-specific repositories
//	vocabRepo := vocabulary.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//
//	// Use repositories
//	words, err := vocabRepo.RandomWords(userID, "red", 5)
//	user, err := usersRepo.GetOrCreateUser(username)
//
// # Interface Implementations
//
//   - vocabulary.Repository: implements http.WordStore and http.TranslationStore
//   - users.Repository: implements http.LoginStore and auth.UserResolver
package database
