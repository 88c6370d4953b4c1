package battery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(t *testing.T, timestamp string, percentage uint8) Sample {
	t.Helper()
	created, err := time.Parse("2006-01-02 15:04:05", timestamp)
	require.NoError(t, err)
	return Sample{ProductID: 1, CreatedAt: created, Percentage: percentage}
}

func TestConsumption(t *testing.T) {
	// Reference discharge trace: two sleep periods (percentage zero) whose
	// duration must be discounted from the surrounding 1% intervals.
	samples := []Sample{
		sampleAt(t, "2022-01-01 20:49:40", 76),
		sampleAt(t, "2022-01-01 21:09:49", 75),
		sampleAt(t, "2022-01-01 21:51:08", 74),
		sampleAt(t, "2022-01-01 22:27:49", 0),
		sampleAt(t, "2022-01-01 23:19:10", 74),
		sampleAt(t, "2022-01-01 23:27:59", 0),
		sampleAt(t, "2022-01-01 23:45:20", 74),
		sampleAt(t, "2022-01-01 23:51:35", 73),
	}

	perPercent, ok := Consumption(samples)
	require.True(t, ok)
	assert.Equal(t, 2728*time.Second, perPercent)
}

func TestConsumptionNoMeasurements(t *testing.T) {
	_, ok := Consumption(nil)
	assert.False(t, ok)

	// A flat series never observes a drop.
	flat := []Sample{
		sampleAt(t, "2022-01-01 20:00:00", 50),
		sampleAt(t, "2022-01-01 21:00:00", 50),
	}
	_, ok = Consumption(flat)
	assert.False(t, ok)
}

func TestHistoryRemaining(t *testing.T) {
	history := NewHistory(0)
	history.Record(sampleAt(t, "2022-01-01 20:00:00", 80))
	history.Record(sampleAt(t, "2022-01-01 20:30:00", 79))
	history.Record(sampleAt(t, "2022-01-01 21:00:00", 78))

	remaining, ok := history.Remaining(Status{ProductID: 1, Percentage: 78})
	require.True(t, ok)
	assert.Equal(t, 78*30*time.Minute, remaining)

	_, ok = history.Remaining(Status{ProductID: 2, Percentage: 50})
	assert.False(t, ok, "unknown product has no history")
}

func TestHistoryBound(t *testing.T) {
	history := NewHistory(3)
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		history.Record(Sample{ProductID: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute), Percentage: uint8(90 - i)})
	}

	samples := history.Samples(1)
	require.Len(t, samples, 3)
	assert.Equal(t, uint8(88), samples[0].Percentage, "oldest samples dropped first")
}

func TestHistoryLastPercentage(t *testing.T) {
	history := NewHistory(0)
	history.Record(sampleAt(t, "2022-01-01 20:00:00", 42))
	history.Record(sampleAt(t, "2022-01-01 20:01:00", 0))

	percent, ok := history.LastPercentage(1)
	require.True(t, ok)
	assert.Equal(t, uint8(42), percent, "zero readings are sleep, not charge state")

	_, ok = history.LastPercentage(9)
	assert.False(t, ok)
}
