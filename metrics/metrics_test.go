package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveWalk(t *testing.T) {
	r := NewRun()
	r.StartsTotal.Set(3)
	r.ObserveWalk(10, time.Millisecond)
	r.ObserveWalk(5, 2*time.Millisecond)

	assert.Equal(t, 15.0, testutil.ToFloat64(r.Marked))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.StartsDone))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.StartsTotal))
	n, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRun()
	r.ObserveWalk(7, time.Second)
	path := filepath.Join(t.TempDir(), "rainbow.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rainbow_states_marked_total 7")
	assert.Contains(t, string(data), "rainbow_walk_seconds_count 1")

	assert.Error(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "rainbow.prom")))
}
