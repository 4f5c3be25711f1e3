package memoryconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/memoryconfig"
)

func TestNewClampsThreadsAndConvertsBudget(t *testing.T) {
	c := memoryconfig.New(512, 4, 8)
	require.EqualValues(t, 512, c.BudgetMB())
	require.Equal(t, 4, c.TableGenerationThreads)
	require.Equal(t, 8, c.SearchThreads)
}

func TestNewMinThreads(t *testing.T) {
	c := memoryconfig.New(256, 0, 0)
	require.Equal(t, 1, c.TableGenerationThreads)
	require.Equal(t, 1, c.SearchThreads)
}

func TestForMobileDefault(t *testing.T) {
	c := memoryconfig.ForMobileDefault()
	require.EqualValues(t, 256, c.BudgetMB())
	require.Equal(t, 2, c.TableGenerationThreads)
	require.Equal(t, 4, c.SearchThreads)
}

func TestForDesktopUsesDetectedCPUs(t *testing.T) {
	c := memoryconfig.ForDesktop()
	require.Equal(t, memoryconfig.AvailableCPUs(), c.TableGenerationThreads)
	require.Equal(t, memoryconfig.AvailableCPUs(), c.SearchThreads)
	require.Greater(t, c.TotalBudgetBytes, int64(0))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.toml")
	c := memoryconfig.New(1024, 3, 6)

	require.NoError(t, memoryconfig.Save(path, c))
	loaded, err := memoryconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, c, loaded)
}

func TestMemoryTrackerAllocation(t *testing.T) {
	tr := memoryconfig.NewTracker(10) // 10 MB budget
	require.True(t, tr.CanAllocate(5*1024*1024))

	require.True(t, tr.TryAllocate(8*1024*1024))
	require.False(t, tr.TryAllocate(5*1024*1024))
	require.EqualValues(t, 8, tr.UsedMB())

	tr.Deallocate(8 * 1024 * 1024)
	require.EqualValues(t, 0, tr.UsedBytes())
}

func TestMemoryTrackerWarningThreshold(t *testing.T) {
	tr := memoryconfig.NewTracker(10)
	require.False(t, tr.IsAtWarningThreshold())

	tr.Allocate(9 * 1024 * 1024)
	require.True(t, tr.IsAtWarningThreshold())
}

func TestMemoryTrackerZeroBudgetReportsFullUsage(t *testing.T) {
	tr := memoryconfig.NewTracker(0)
	require.Equal(t, 100.0, tr.UsagePercentage())
}
