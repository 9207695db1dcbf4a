package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTime() time.Time {
	return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
}

func TestEnqueuePopFIFOOrder(t *testing.T) {
	q := New("reception", 10)
	t0 := baseTime()
	q.Enqueue("a", t0)
	q.Enqueue("b", t0.Add(time.Minute))

	id, _, ok := q.Pop(t0.Add(2 * time.Minute))
	require.True(t, ok)
	assert.Equal(t, "a", id)

	id, _, ok = q.Pop(t0.Add(3 * time.Minute))
	require.True(t, ok)
	assert.Equal(t, "b", id)

	_, _, ok = q.Pop(t0)
	assert.False(t, ok)
}

func TestPopRecordsWaitDuration(t *testing.T) {
	q := New("reception", 10)
	t0 := baseTime()
	q.Enqueue("a", t0)
	q.Pop(t0.Add(5 * time.Minute))
	q.CloseDay(t0.Add(10 * time.Hour))
	require.Len(t, q.DailyAvgWaits, 1)
	assert.InDelta(t, 5.0, q.DailyAvgWaits[0], 1e-9)
}

func TestRemoveForAbandonment(t *testing.T) {
	q := New("pipes_river", 10)
	t0 := baseTime()
	q.Enqueue("a", t0)
	q.Enqueue("b", t0)
	q.Enqueue("c", t0)

	ok := q.Remove("b", t0.Add(time.Minute))
	require.True(t, ok)
	assert.False(t, q.Contains("b"))
	assert.Equal(t, 2, q.Len())

	head, _ := q.Peek()
	assert.Equal(t, "a", head)

	ok = q.Remove("nonexistent", t0)
	assert.False(t, ok)
}

func TestEnqueueFrontPreservesOrderForRollback(t *testing.T) {
	q := New("big_pipes", 10)
	t0 := baseTime()
	q.Enqueue("a", t0)
	q.Enqueue("b", t0)

	// simulate popping "a" then rolling it back to the front
	id, arrivedAt, ok := q.Pop(t0.Add(time.Minute))
	require.True(t, ok)
	require.Equal(t, "a", id)

	q.EnqueueFront(id, arrivedAt, t0.Add(time.Minute))

	head, _ := q.Peek()
	assert.Equal(t, "a", head)
	assert.Equal(t, 2, q.Len())
}

func TestCloseDayResetsCountersForNextDay(t *testing.T) {
	q := New("wave_pool", 10)
	t0 := baseTime()
	q.Enqueue("a", t0)
	q.CloseDay(t0.Add(10 * time.Hour))

	assert.Len(t, q.DailyAvgLengths, 1)
	assert.Equal(t, 0.0, q.lengthArea)
	assert.False(t, q.hasSample)
	assert.Nil(t, q.waits)

	// second day accrues independently
	q.Pop(t0.Add(10 * time.Hour))
	q.CloseDay(t0.Add(20 * time.Hour))
	assert.Len(t, q.DailyAvgLengths, 2)
}

func TestCloseDayWithEmptyQueueRecordsZeroAverages(t *testing.T) {
	q := New("kids_pool", 10)
	q.CloseDay(baseTime().Add(10 * time.Hour))
	require.Len(t, q.DailyAvgLengths, 1)
	require.Len(t, q.DailyAvgWaits, 1)
	assert.Equal(t, 0.0, q.DailyAvgLengths[0])
	assert.Equal(t, 0.0, q.DailyAvgWaits[0])
}
