package clocktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_FiresOnlyAfterDeadline(t *testing.T) {
	f := New()
	timer := f.NewTimer(time.Second)

	f.Advance(999 * time.Millisecond)
	select {
	case <-timer.C():
		t.Fatal("timer fired early")
	default:
	}
	assert.Equal(t, 1, f.Pending())

	f.Advance(time.Millisecond)
	select {
	case <-timer.C():
	default:
		t.Fatal("timer did not fire at deadline")
	}
	assert.Equal(t, 0, f.Pending())
}

func TestFake_StopPreventsFire(t *testing.T) {
	f := New()
	timer := f.NewTimer(time.Second)

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second Stop reports already stopped")

	f.Advance(2 * time.Second)
	select {
	case <-timer.C():
		t.Fatal("stopped timer fired")
	default:
	}
}

func TestFake_ZeroDurationFiresImmediately(t *testing.T) {
	f := New()
	timer := f.NewTimer(0)
	select {
	case <-timer.C():
	default:
		t.Fatal("zero-duration timer should be ready")
	}
	assert.False(t, timer.Stop())
}
