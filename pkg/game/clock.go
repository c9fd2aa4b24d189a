package game

import (
	"fmt"
	"time"

	"chessmate/pkg/rules"
)

// Clock accumulates the wall time each side has spent thinking. Time is
// attributed at move boundaries, so there is no ticker goroutine; the UI
// reads Elapsed on every render.
type Clock struct {
	used    [2]time.Duration
	turn    rules.Color
	since   time.Time
	running bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Start begins timing the given side.
func (cl *Clock) Start(turn rules.Color) {
	cl.turn = turn
	cl.since = time.Now()
	cl.running = true
}

// Switch credits the elapsed time to the side that just moved and starts
// timing the other side.
func (cl *Clock) Switch(to rules.Color) {
	if !cl.running {
		cl.Start(to)
		return
	}
	now := time.Now()
	cl.used[cl.turn] += now.Sub(cl.since)
	cl.turn = to
	cl.since = now
}

// Stop ends timing, crediting the side currently on the move.
func (cl *Clock) Stop() {
	if !cl.running {
		return
	}
	cl.used[cl.turn] += time.Since(cl.since)
	cl.running = false
}

// Elapsed returns the total time the given side has spent, including the
// in-progress turn.
func (cl *Clock) Elapsed(c rules.Color) time.Duration {
	d := cl.used[c]
	if cl.running && cl.turn == c {
		d += time.Since(cl.since)
	}
	return d
}

// Format renders a duration as m:ss, the way the clock is shown in the UI.
func Format(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
