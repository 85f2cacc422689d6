package loop

import (
	"time"

	"github.com/tomz197/laneshooter/internal/game"
)

var _ game.Scheduler = (*tickerScheduler)(nil)

// tickerScheduler implements game.Scheduler on top of a time.Ticker whose
// channel is selected by the session loop. The callback therefore runs on
// the loop goroutine, serialised with frame ticks.
type tickerScheduler struct {
	ticker *time.Ticker
	fn     func()
}

// Every replaces any armed trigger with a new one.
func (s *tickerScheduler) Every(d time.Duration, fn func()) func() {
	s.stop()
	t := time.NewTicker(d)
	s.ticker = t
	s.fn = fn
	return func() {
		if s.ticker == t {
			s.stop()
		}
	}
}

// C returns the trigger channel, or nil while nothing is armed.
func (s *tickerScheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

func (s *tickerScheduler) fire() {
	if s.fn != nil {
		s.fn()
	}
}

func (s *tickerScheduler) stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
		s.fn = nil
	}
}
