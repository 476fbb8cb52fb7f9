package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerFixedIterations(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations: 250,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	var calls, total int
	result, err := runner.Run("fixed", func(b *B) {
		calls++
		total += b.N
	})
	require.NoError(t, err)

	// Fixed mode runs the function exactly once, with the pinned count.
	assert.Equal(t, 1, calls)
	assert.Equal(t, 250, total)
	assert.Equal(t, int64(250), result.Iterations)
	assert.Equal(t, "fixed", result.Name)
}

func TestRunnerCalibratesIterations(t *testing.T) {
	runner, err := NewRunner(Options{
		Benchtime:       20 * time.Millisecond,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	result, err := runner.Run("spin", func(b *B) {
		for i := 0; i < b.N; i++ {
			time.Sleep(10 * time.Microsecond)
		}
	})
	require.NoError(t, err)

	// A fast function must be run more than once to fill the benchtime.
	assert.Greater(t, result.Iterations, int64(1))
	assert.Greater(t, result.NsPerOp, 0.0)
	assert.GreaterOrEqual(t, result.Elapsed, (20 * time.Millisecond).Nanoseconds())
}

func TestRunnerRespectsMaxIterations(t *testing.T) {
	runner, err := NewRunner(Options{
		Benchtime:       time.Hour, // unreachable on purpose
		MaxIterations:   100,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	result, err := runner.Run("capped", func(b *B) {
		for i := 0; i < b.N; i++ {
			_ = i
		}
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, result.Iterations, int64(100))
}

func TestRunnerReportsThroughput(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations: 100,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	result, err := runner.Run("throughput", func(b *B) {
		b.SetBytes(1024)
		for i := 0; i < b.N; i++ {
			time.Sleep(time.Microsecond)
		}
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1024), result.BytesPerOp)
	assert.Greater(t, result.MBPerSec, 0.0)
}

func TestRunnerReportsAllocations(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations: 100,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	var sink []byte
	result, err := runner.Run("allocs", func(b *B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = make([]byte, 4096)
		}
	})
	require.NoError(t, err)
	_ = sink

	assert.True(t, result.AllocsReported)
	assert.GreaterOrEqual(t, result.AllocsPerOp, 1.0)
	assert.GreaterOrEqual(t, result.AllocBytesPerOp, 4096.0)
}

func TestRunnerReportsCustomMetrics(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations: 10,
		SampleLatencies: false,
	})
	require.NoError(t, err)

	result, err := runner.Run("custom", func(b *B) {
		for i := 0; i < b.N; i++ {
			_ = i
		}
		b.ReportMetric(64, "chars/op")
		b.ReportMetric(2.5, "lookups/op")
	})
	require.NoError(t, err)

	require.Len(t, result.Extra, 2)
	assert.Equal(t, 64.0, result.Extra["chars/op"])
	assert.Equal(t, 2.5, result.Extra["lookups/op"])
}

func TestRunnerSamplesLatencies(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations: 50,
		SampleLatencies: true,
	})
	require.NoError(t, err)

	result, err := runner.Run("latency", func(b *B) {
		for i := 0; i < b.N; i++ {
			time.Sleep(50 * time.Microsecond)
		}
	})
	require.NoError(t, err)

	require.NotNil(t, result.Latency)
	assert.Equal(t, int64(50), result.Latency.Count)
	// Histogram buckets round values; allow a little slack below the
	// slept duration.
	assert.Greater(t, result.Latency.Min, 45*time.Microsecond)
	assert.LessOrEqual(t, result.Latency.P50, result.Latency.P99)
}

func TestRunnerInputValidation(t *testing.T) {
	_, err := NewRunner(Options{Benchtime: -time.Second})
	assert.Error(t, err)

	_, err = NewRunner(Options{FixedIterations: -1})
	assert.Error(t, err)

	_, err = NewRunner(Options{WarmupIterations: -1})
	assert.Error(t, err)

	runner, err := NewRunner(DefaultOptions())
	require.NoError(t, err)

	_, err = runner.Run("", func(b *B) {})
	assert.Error(t, err)

	_, err = runner.Run("nil-fn", nil)
	assert.Error(t, err)
}

func TestRunnerWarmupIsNotMeasured(t *testing.T) {
	runner, err := NewRunner(Options{
		FixedIterations:  10,
		WarmupIterations: 5,
		SampleLatencies:  false,
	})
	require.NoError(t, err)

	var total int
	result, err := runner.Run("warmup", func(b *B) {
		total += b.N
	})
	require.NoError(t, err)

	// Warmup iterations execute but never count toward the result.
	assert.Equal(t, 15, total)
	assert.Equal(t, int64(10), result.Iterations)
}

func TestBTimerControls(t *testing.T) {
	b := &B{N: 1}

	b.StartTimer()
	time.Sleep(5 * time.Millisecond)
	b.StopTimer()
	measured := b.duration

	assert.GreaterOrEqual(t, measured, 5*time.Millisecond)

	// Time spent with the timer stopped must not accumulate.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, measured, b.duration)

	b.ResetTimer()
	assert.Equal(t, time.Duration(0), b.duration)
}
