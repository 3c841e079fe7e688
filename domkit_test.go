package domkit

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domkit/pkg/dom"
	"github.com/bnema/domkit/pkg/headless"
	"github.com/bnema/domkit/pkg/webview"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func newToolkit(t *testing.T) *Toolkit {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	tk, err := New(context.Background())
	require.NoError(t, err)
	return tk
}

func TestToolkitInjectorUsesConfiguredKey(t *testing.T) {
	tk := newToolkit(t)
	ctx := tk.Context(context.Background())

	r, err := headless.New(ctx)
	require.NoError(t, err)

	path := t.TempDir() + "/theme.css"
	require.NoError(t, writeFile(path, "body { color: red; }"))

	_, err = tk.Injector(r).InjectFile(ctx, path)
	require.NoError(t, err)

	// Default dataset key from config.
	_, present, err := webview.DatasetGet(ctx, r, "injectedStylesheets")
	require.NoError(t, err)
	assert.True(t, present)
}

func TestToolkitInView(t *testing.T) {
	tk := newToolkit(t)

	// Default threshold 0.75, n=10, fixedCount=10: index 8.
	tops := []float64{0, 0, 0, 0, 0, 0, 0, 500, 900, 900}
	inView, ok := tk.InView(dom.Viewport{Height: 600}, tops, 10)
	require.True(t, ok)
	assert.True(t, inView)

	_, ok = tk.InView(dom.Viewport{Height: 600}, nil, 10)
	assert.False(t, ok)
}

func TestToolkitPlatformClasses(t *testing.T) {
	tk := newToolkit(t)
	assert.NotEmpty(t, tk.PlatformClasses())
}
