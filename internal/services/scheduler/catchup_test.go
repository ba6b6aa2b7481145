package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingMinutes(t *testing.T) {
	last := time.Date(2024, 1, 15, 8, 58, 40, 0, time.UTC)

	assert.Empty(t, pendingMinutes(last, last.Add(10*time.Second)))
	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 15, 8, 59, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
	}, pendingMinutes(last, last.Add(90*time.Second)))

	stalled := pendingMinutes(last, last.Add(time.Hour))
	assert.Len(t, stalled, maxCatchUp)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 58, 0, 0, time.UTC), stalled[len(stalled)-1])
}
