package inject

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domkit/pkg/headless"
)

func TestWatcherReinjectsOnChange(t *testing.T) {
	ctx := context.Background()
	r, err := headless.New(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "live.css")
	require.NoError(t, os.WriteFile(path, []byte("body { color: red; }"), 0o644))

	w, err := NewWatcher(ctx, r, WithQuietPeriod(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(path, []byte("body { color: blue; }"), 0o644))

	require.Eventually(t, func() bool {
		css := r.InsertedCSS()
		return len(css) > 0 && css[len(css)-1] == "body{color:blue}"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherClose(t *testing.T) {
	ctx := context.Background()
	r, err := headless.New(ctx)
	require.NoError(t, err)

	w, err := NewWatcher(ctx, r)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
