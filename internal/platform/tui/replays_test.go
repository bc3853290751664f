package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestReplaysModelListsSimulatesAndDeletes(t *testing.T) {
	store := openStore(t)
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"aaaaaaaa-1111", "bbbbbbbb-2222"} {
		require.NoError(t, store.SaveReplay("flappy", flappy.Replay{
			RunID:     id,
			Seed:      int64(i + 1),
			TickRate:  60,
			Width:     80,
			Height:    24,
			Ticks:     300,
			Events:    []flappy.Event{{Tick: 0, Kind: flappy.EventFlap}},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	m := NewReplaysModel(store, config.DefaultFlappyConfig(), 10, 100, 30)
	require.Len(t, m.Entries(), 2)
	assert.Equal(t, "bbbbbbbb-2222", m.Entries()[0].RunID, "newest run first")
	assert.Contains(t, m.View(), "bbbbbbbb")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ReplaysModel)
	assert.Contains(t, m.Status(), "Run bbbbbbbb")
	assert.Contains(t, m.Status(), "ended")

	next, _ = m.Update(runeKey('d'))
	m = next.(ReplaysModel)
	require.Len(t, m.Entries(), 1)
	assert.Equal(t, "aaaaaaaa-1111", m.Entries()[0].RunID)
	assert.Equal(t, "Deleted bbbbbbbb", m.Status())
}

func TestReplaysModelEmpty(t *testing.T) {
	m := NewReplaysModel(nil, config.DefaultFlappyConfig(), 10, 80, 24)
	assert.Empty(t, m.Entries())
	assert.Contains(t, m.View(), "No runs recorded yet.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, next.(ReplaysModel).Status())
	assert.Nil(t, cmd)
}

func TestDescribeResult(t *testing.T) {
	s := DescribeResult(flappy.Result{RunID: "0123456789", Ticks: 90, Obstacles: 4, Pairs: 2, Ended: true})
	assert.Equal(t, "Run 01234567: score 2 (4 obstacles) after 90 ticks, ended", s)
}
