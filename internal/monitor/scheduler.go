package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const runTimeout = 5 * time.Minute

// Scheduler runs the sweep on a fixed interval in a background goroutine.
// The first sweep runs immediately at start, later ones on every tick.
type Scheduler struct {
	sweeper  *Sweeper
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler running the sweeper every interval.
func NewScheduler(sweeper *Sweeper, interval time.Duration) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the scheduler loop.
func (s *Scheduler) Start() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		s.loop()
	}()

	log.Info().Dur("interval", s.interval).Msg("price monitor scheduler started")
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()

	log.Info().Msg("price monitor scheduler stopped")
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// first sweep right at start
	s.run()

	for {
		select {
		case <-ticker.C:
			s.run()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()

	if err := s.sweeper.Run(ctx); err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("price monitor sweep failed")
		return
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("price monitor sweep finished")
}
