// Package tui provides the Bubble Tea integration for the SkiFree platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTicksPerFrame bounds catch-up after a stall (suspend, slow terminal).
const maxTicksPerFrame = 8

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// accumulator converts wall-clock time into whole simulation ticks, so the
// simulation runs at its tick rate whatever the frame rate.
type accumulator struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

func newAccumulator(tickRate int) accumulator {
	if tickRate <= 0 {
		tickRate = 60
	}
	return accumulator{step: time.Second / time.Duration(tickRate)}
}

// advance returns how many ticks are due at now. The first call only
// records the start time. Leftover time carries into the next frame;
// time beyond maxTicksPerFrame is dropped.
func (a *accumulator) advance(now time.Time) int {
	if a.last.IsZero() {
		a.last = now
		return 0
	}
	elapsed := now.Sub(a.last)
	a.last = now
	if elapsed <= 0 {
		return 0
	}

	a.acc += elapsed
	n := int(a.acc / a.step)
	a.acc -= time.Duration(n) * a.step
	if n > maxTicksPerFrame {
		n = maxTicksPerFrame
		a.acc = 0
	}
	return n
}

// reset forgets elapsed time, e.g. after a pause or restart.
func (a *accumulator) reset() {
	a.acc = 0
	a.last = time.Time{}
}
