// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step of the game model whose chain
// produced it. A model drops ticks of other generations, so a chain left
// over from a previous game never speeds up the next one.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

var generations atomic.Uint64

// nextGeneration returns a fresh tick chain id.
func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd schedules the next tick of chain gen at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
