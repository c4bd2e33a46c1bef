// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/pawandazzler/french-vocab-anki/internal/tasks"
)

// PrewarmScheduler periodically enqueues a prewarm task that fills any gaps
// in the pronunciation audio cache.
type PrewarmScheduler struct {
	taskClient *tasks.Client
	schedule   string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewPrewarmScheduler creates a scheduler with a standard 5-field cron
// schedule.
func NewPrewarmScheduler(taskClient *tasks.Client, schedule string) *PrewarmScheduler {
	return &PrewarmScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *PrewarmScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.taskClient.Add(tasks.PrewarmMissingAudioTask{}).Save(); err != nil {
			log.Printf("Audio prewarm scheduler: failed to enqueue task: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audio prewarm: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Audio prewarm scheduler: started with schedule '%s'", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler.
func (s *PrewarmScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Stop()
	s.isRunning = false
	log.Printf("Audio prewarm scheduler: stopped")
}
