package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPacerFirstCallReturnsImmediately(t *testing.T) {
	p := NewPacer(time.Hour)
	slept := time.Duration(0)
	p.sleep = func(d time.Duration) { slept += d }

	p.Wait()
	require.Zero(t, slept)
}

func TestPacerSpacesCalls(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)
	slept := time.Duration(0)
	p.sleep = func(d time.Duration) { slept += d }

	p.Wait()
	p.Wait()
	require.Greater(t, slept, time.Duration(0))
	require.LessOrEqual(t, slept, 100*time.Millisecond)
}

func TestPacerZeroIntervalNeverSleeps(t *testing.T) {
	p := NewPacer(0)
	p.sleep = func(d time.Duration) { t.Fatal("should not sleep") }

	for i := 0; i < 10; i++ {
		p.Wait()
	}
}
