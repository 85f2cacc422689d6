package game

import "time"

// Scheduler arms recurring triggers. The game uses it for the enemy spawn
// timer so that the timer's lifetime follows the Running state.
type Scheduler interface {
	// Every calls fn every d until the returned cancel function is called.
	// fn must run on the goroutine that owns the game.
	Every(d time.Duration, fn func()) (cancel func())
}
