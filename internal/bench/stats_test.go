package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	samples := []Sample{
		{Elapsed: 30 * time.Millisecond, AllocBytes: 300},
		{Elapsed: 10 * time.Millisecond, AllocBytes: 100},
		{Elapsed: 20 * time.Millisecond, AllocBytes: 200},
	}

	stats := computeStats(samples)
	require.NotNil(t, stats)
	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 20*time.Millisecond, stats.Median)
	assert.Equal(t, 20*time.Millisecond, stats.Mean)
	assert.Equal(t, 30*time.Millisecond, stats.Max)
	assert.Equal(t, uint64(200), stats.AllocBytes)
}

func TestComputeStatsExcludesGCSamples(t *testing.T) {
	samples := []Sample{
		{Elapsed: 10 * time.Millisecond},
		{Elapsed: 500 * time.Millisecond, GCHit: true}, // must not skew the max
		{Elapsed: 12 * time.Millisecond},
	}

	stats := computeStats(samples)
	require.NotNil(t, stats)
	assert.Equal(t, 12*time.Millisecond, stats.Max)
	assert.Equal(t, 11*time.Millisecond, stats.Median)
}

func TestComputeStatsAllGCAffected(t *testing.T) {
	samples := []Sample{
		{Elapsed: 10 * time.Millisecond, GCHit: true},
		{Elapsed: 12 * time.Millisecond, GCHit: true},
	}

	// Absent, not zero.
	assert.Nil(t, computeStats(samples))
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Nil(t, computeStats(nil))
}

func TestMedianEvenCount(t *testing.T) {
	sorted := []time.Duration{10, 20, 30, 40}
	assert.Equal(t, time.Duration(25), median(sorted))
}

func TestMedianOddCount(t *testing.T) {
	sorted := []time.Duration{10, 20, 30}
	assert.Equal(t, time.Duration(20), median(sorted))
}
