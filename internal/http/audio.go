package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawandazzler/french-vocab-anki/internal/audio"
)

// TranslationStore resolves English terms to their French translation.
type TranslationStore interface {
	FrenchFor(english string) (string, error)
}

type AudioController struct {
	store TranslationStore
	cache *audio.Cache
}

func NewAudioController(store TranslationStore, cache *audio.Cache) *AudioController {
	return &AudioController{
		store: store,
		cache: cache,
	}
}

// PlayAudio serves the French pronunciation for an English term,
// synthesizing and caching it on first request.
// GET /api/play_audio?english=...
func (ac *AudioController) PlayAudio(c *gin.Context) {
	english := c.Query("english")
	if english == "" {
		respondBadRequest(c, "missing parameter")
		return
	}

	french, err := ac.store.FrenchFor(english)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "word")
		return
	}
	if err != nil {
		respondInternalError(c, err, "look up word")
		return
	}

	data, err := ac.cache.Get(c.Request.Context(), french)
	if err != nil {
		respondInternalError(c, err, "synthesize audio")
		return
	}

	c.Data(http.StatusOK, audio.ContentType, data)
}
