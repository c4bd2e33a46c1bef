package tts

import "context"

// Synthesizer converts text to spoken audio.
// Concrete implementations wrap an external speech provider.
type Synthesizer interface {
	// Synthesize renders text as MP3 bytes.
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Name() string
}
