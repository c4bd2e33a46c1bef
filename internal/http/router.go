package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Session must load before identity resolution
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	health := NewHealthController(cfg.Database, cfg.Version)
	wordsController := NewWordsController(cfg.WordStore, cfg.TaskClient)
	sessionController := NewSessionController(cfg.LoginStore, cfg.SessionManager)
	audioController := NewAudioController(cfg.TranslationStore, cfg.AudioCache)
	uiController := NewUIController()

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Session endpoints
	router.POST("/login", sessionController.Login)
	router.POST("/logout", sessionController.Logout)

	// Vocabulary API endpoints
	router.GET("/api/get_color_counts", wordsController.GetColorCounts)
	router.POST("/api/add_vocab_bulk", wordsController.AddVocabBulk)
	router.GET("/api/get_random_words", wordsController.GetRandomWords)
	router.POST("/api/check_answer", wordsController.CheckAnswer)
	router.POST("/api/update_color", wordsController.UpdateColor)

	// Pronunciation audio
	router.GET("/api/play_audio", audioController.PlayAudio)

	// UI routes
	router.GET("/", uiController.IndexPage)

	return router
}
