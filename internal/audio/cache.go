// Package audio caches synthesized pronunciation files on disk.
//
// Files are keyed by a hash of the spoken term, so terms with accents or
// filesystem-unsafe characters never leak into paths, and synthesis for any
// given term runs at most once at a time.
package audio

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"

	"github.com/pawandazzler/french-vocab-anki/internal/tts"
)

// ContentType is the MIME type of all cached audio.
const ContentType = "audio/mpeg"

// Cache handles local caching of synthesized pronunciation audio.
type Cache struct {
	cacheDir    string
	synthesizer tts.Synthesizer
	group       singleflight.Group
}

// NewCache creates a new pronunciation cache at the specified directory.
func NewCache(cacheDir string, synthesizer tts.Synthesizer) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &Cache{
		cacheDir:    cacheDir,
		synthesizer: synthesizer,
	}, nil
}

// Get returns the pronunciation audio for a term, synthesizing and caching
// it on first request. Concurrent requests for the same uncached term share
// a single synthesis call.
func (c *Cache) Get(ctx context.Context, term string) ([]byte, error) {
	path := c.audioPath(term)

	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		// Re-check inside the flight: a previous caller may have
		// finished the write while we waited.
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}

		data, err := c.synthesizer.Synthesize(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("synthesize %q: %w", term, err)
		}
		if err := c.writeAtomic(path, data); err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Contains reports whether audio for the term is already cached.
func (c *Cache) Contains(term string) bool {
	_, err := os.Stat(c.audioPath(term))
	return err == nil
}

// audioPath generates the cache path from a hash of the term text.
func (c *Cache) audioPath(term string) string {
	hash := sha256.Sum256([]byte(term))
	return filepath.Join(c.cacheDir, fmt.Sprintf("%x.mp3", hash[:16]))
}

// writeAtomic writes audio to a temp file in the cache directory and
// renames it into place.
func (c *Cache) writeAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(c.cacheDir, "audio_tmp_")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // Clean up if we didn't rename
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// CacheDir returns the cache directory path.
func (c *Cache) CacheDir() string {
	return c.cacheDir
}
