package logging

import (
	"os"
	"path/filepath"
	"testing"

	"greetcard/internal/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_EmptyFileIsNop(t *testing.T) {
	log, err := New("", "debug")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "card.log")
	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

func TestObserver_LogsTransitions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewObserver(zap.New(core))

	s := card.NewSession("Anjali", "hi", "/photo.jpg")
	obs.OnSessionStart(s)
	obs.OnAdvance(card.Transition{From: card.StepIntro, To: card.StepCountdown, Counter: 2})
	obs.OnGiftOpened()
	obs.OnSessionEnd()

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "advance", entries[1].Message)
	assert.Equal(t, "Countdown", entries[1].ContextMap()["to"])
	assert.Equal(t, s.ID, entries[2].ContextMap()["session"])
}
