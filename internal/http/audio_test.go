package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawandazzler/french-vocab-anki/internal/audio"
	"github.com/pawandazzler/french-vocab-anki/internal/database/vocabulary"
)

type stubSynthesizer struct {
	lastText string
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.lastText = text
	return []byte("mp3-bytes"), nil
}

func (s *stubSynthesizer) Name() string { return "stub" }

func setupAudioTest(t *testing.T) (*gin.Engine, *stubSynthesizer, func()) {
	t.Helper()

	db, cleanup := setupWordsTestDB(t)

	synth := &stubSynthesizer{}
	cache, err := audio.NewCache(t.TempDir(), synth)
	require.NoError(t, err)

	controller := NewAudioController(vocabulary.NewRepository(db.DB), cache)
	router := gin.New()
	router.GET("/api/play_audio", controller.PlayAudio)

	return router, synth, cleanup
}

func TestAudioController_PlayAudio(t *testing.T) {
	t.Run("rejects a missing parameter", func(t *testing.T) {
		router, _, cleanup := setupAudioTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/play_audio", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing parameter")
	})

	t.Run("returns 404 for an unknown word", func(t *testing.T) {
		router, _, cleanup := setupAudioTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/play_audio?english=xylophone", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("synthesizes the French translation", func(t *testing.T) {
		router, synth, cleanup := setupAudioTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/play_audio?english=cat", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, audio.ContentType, w.Header().Get("Content-Type"))
		assert.Equal(t, "mp3-bytes", w.Body.String())
		// The spoken term is the translation, not the English prompt
		assert.Equal(t, "chat", synth.lastText)
	})
}
