package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		UI
		Audio
		TTS
		Session
		Tasks
		Prewarm
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Audio struct {
		Dir string // Directory for cached pronunciation files
	}
	TTS struct {
		BaseURL  string
		Language string // Voice language code, e.g. "fr"
		Timeout  time.Duration
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Prewarm struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("audio_dir", DefaultAudioDir)

	// TTS defaults
	v.SetDefault("tts_base_url", "https://translate.google.com/translate_tts")
	v.SetDefault("tts_language", "fr")
	v.SetDefault("tts_timeout", "10s")

	// Session defaults
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_secure_cookies", false)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Audio prewarm defaults
	v.SetDefault("prewarm_enabled", false)
	v.SetDefault("prewarm_schedule", "0 3 * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Audio: Audio{
			Dir: v.GetString("AUDIO_DIR"),
		},
		TTS: TTS{
			BaseURL:  v.GetString("TTS_BASE_URL"),
			Language: v.GetString("TTS_LANGUAGE"),
			Timeout:  v.GetDuration("TTS_TIMEOUT"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Prewarm: Prewarm{
			Enabled:  v.GetBool("PREWARM_ENABLED"),
			Schedule: v.GetString("PREWARM_SCHEDULE"),
		},
	}
}
