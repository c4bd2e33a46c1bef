package config

// Default paths used when the corresponding environment variables are unset.
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./vocab.db"

	// DefaultAudioDir is where synthesized pronunciation files are cached
	DefaultAudioDir = "./static/audio"
)
