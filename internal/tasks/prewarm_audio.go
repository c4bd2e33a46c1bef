package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/pawandazzler/french-vocab-anki/internal/audio"
)

// TermLister provides the vocabulary terms whose audio can be prewarmed.
type TermLister interface {
	AllFrenchTerms() ([]string, error)
}

// PrewarmAudioTask synthesizes pronunciation audio for a single term so the
// first quiz playback hits a warm cache.
type PrewarmAudioTask struct {
	French string `json:"french"`
}

func (t PrewarmAudioTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prewarm_audio",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PrewarmAudioProcessor creates a processor that fills the audio cache for
// one term.
func PrewarmAudioProcessor(cache *audio.Cache) backlite.QueueProcessor[PrewarmAudioTask] {
	return func(ctx context.Context, task PrewarmAudioTask) error {
		if cache.Contains(task.French) {
			return nil
		}
		if _, err := cache.Get(ctx, task.French); err != nil {
			return fmt.Errorf("prewarm %q: %w", task.French, err)
		}
		log.Printf("[TASK] Prewarmed audio for %q", task.French)
		return nil
	}
}

func NewPrewarmAudioQueue(cache *audio.Cache) backlite.Queue {
	return backlite.NewQueue(PrewarmAudioProcessor(cache))
}

// PrewarmMissingAudioTask walks the whole vocabulary and synthesizes audio
// for every term without a cached file.
type PrewarmMissingAudioTask struct{}

func (t PrewarmMissingAudioTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prewarm_missing_audio",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func PrewarmMissingAudioProcessor(store TermLister, cache *audio.Cache) backlite.QueueProcessor[PrewarmMissingAudioTask] {
	return func(ctx context.Context, task PrewarmMissingAudioTask) error {
		terms, err := store.AllFrenchTerms()
		if err != nil {
			return fmt.Errorf("list terms: %w", err)
		}

		var warmed, failed int
		for _, term := range terms {
			select {
			case <-ctx.Done():
				log.Printf("[TASK] Context cancelled, warmed %d terms, %d failed", warmed, failed)
				return ctx.Err()
			default:
			}

			if cache.Contains(term) {
				continue
			}
			if _, err := cache.Get(ctx, term); err != nil {
				log.Printf("[TASK] Failed to prewarm %q: %v", term, err)
				failed++
				continue
			}
			warmed++
		}

		log.Printf("[TASK] Prewarmed %d terms, %d failed out of %d total", warmed, failed, len(terms))
		return nil
	}
}

func NewPrewarmMissingAudioQueue(store TermLister, cache *audio.Cache) backlite.Queue {
	return backlite.NewQueue(PrewarmMissingAudioProcessor(store, cache))
}
