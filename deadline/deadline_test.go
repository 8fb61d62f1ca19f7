package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvusgraph/pursuit/deadline"
)

func TestLoopRunsUntilOutOfTime(t *testing.T) {
	l := deadline.NewLoop(time.Now().Add(30*time.Millisecond), 1.2)
	iterations := 0
	for l.Try(func() {
		iterations++
		time.Sleep(5 * time.Millisecond)
	}) {
	}
	assert.Greater(t, iterations, 0)
	assert.True(t, l.Expired() || l.Remaining() < 10*time.Millisecond)
}

func TestLoopDefaultTolerance(t *testing.T) {
	l := deadline.NewLoop(time.Now().Add(time.Second), 0)
	ran := l.Try(func() {})
	assert.True(t, ran)
}

func TestRemainingAtBounds(t *testing.T) {
	finish := time.Now().Add(100 * time.Millisecond)
	atZero := deadline.RemainingAt(finish, 0)
	atOne := deadline.RemainingAt(finish, 1)
	assert.True(t, atZero.Before(atOne) || atZero.Equal(atOne))
	assert.WithinDuration(t, finish, atOne, 2*time.Millisecond)
}

func TestRemainingAtRejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		deadline.RemainingAt(time.Now(), 1.5)
	})
}

func TestDistributeIsMonotonic(t *testing.T) {
	finish := time.Now().Add(100 * time.Millisecond)
	phases := deadline.Distribute(finish, []float64{0.2, 0.3, 0.5})
	assert.Len(t, phases, 3)
	assert.True(t, phases[0].Before(phases[1]) || phases[0].Equal(phases[1]))
	assert.True(t, phases[1].Before(phases[2]) || phases[1].Equal(phases[2]))
	assert.WithinDuration(t, finish, phases[2], 2*time.Millisecond)
}
