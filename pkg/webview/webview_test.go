package webview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domkit/pkg/headless"
)

// recordingExec counts executed snippets without running them.
type recordingExec struct {
	calls []string
}

func (r *recordingExec) ExecuteJavaScript(_ context.Context, code string) (string, error) {
	r.calls = append(r.calls, code)
	return "0", nil
}

func newRuntime(t *testing.T, selectors ...string) *headless.Runtime {
	t.Helper()
	r, err := headless.New(context.Background())
	require.NoError(t, err)
	if len(selectors) > 0 {
		require.NoError(t, r.RegisterElement(selectors...))
	}
	return r
}

func evalString(t *testing.T, r *headless.Runtime, code string) string {
	t.Helper()
	out, err := r.ExecuteJavaScript(context.Background(), code)
	require.NoError(t, err)
	return out
}

func TestAddRemoveClasses(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t, "p.note")

	require.NoError(t, AddClasses(ctx, r, "p.note", "visible", "urgent"))
	assert.Equal(t, "true", evalString(t, r, `document.querySelector('p.note').classList.contains('visible')`))
	assert.Equal(t, "true", evalString(t, r, `document.querySelector('p.note').classList.contains('urgent')`))

	require.NoError(t, RemoveClasses(ctx, r, "p.note", "urgent"))
	assert.Equal(t, "false", evalString(t, r, `document.querySelector('p.note').classList.contains('urgent')`))
	assert.Equal(t, "true", evalString(t, r, `document.querySelector('p.note').classList.contains('visible')`))
}

func TestClassOpsEmptyListSkipsExecution(t *testing.T) {
	rec := &recordingExec{}

	require.NoError(t, AddClasses(context.Background(), rec, "p"))
	require.NoError(t, RemoveClasses(context.Background(), rec, "p"))

	assert.Empty(t, rec.calls)
}

func TestShowHideMutualExclusion(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t, "#overlay")

	require.NoError(t, ShowElement(ctx, r, "#overlay"))
	assert.Equal(t, "true", evalString(t, r, `document.querySelector('#overlay').classList.contains('show')`))
	assert.Equal(t, "false", evalString(t, r, `document.querySelector('#overlay').classList.contains('hide')`))

	require.NoError(t, HideElement(ctx, r, "#overlay"))
	assert.Equal(t, "false", evalString(t, r, `document.querySelector('#overlay').classList.contains('show')`))
	assert.Equal(t, "true", evalString(t, r, `document.querySelector('#overlay').classList.contains('hide')`))
}

func TestSetText(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t, "#status")

	require.NoError(t, SetText(ctx, r, "#status", "it's done\nnext line"))
	assert.Equal(t, `"it's done\nnext line"`, evalString(t, r, `document.querySelector('#status').textContent`))
}

func TestDatasetRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t)

	_, present, err := DatasetGet(ctx, r, "injectedStylesheets")
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, DatasetSet(ctx, r, "injectedStylesheets", `["a.css"]`))

	value, present, err := DatasetGet(ctx, r, "injectedStylesheets")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, `["a.css"]`, value)
}

func TestEventListeners(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t, "#btn")

	listeners, err := EventListeners(ctx, r, "#btn")
	require.NoError(t, err)
	assert.Empty(t, listeners)

	evalString(t, r, `(function() {
	  var el = document.querySelector('#btn');
	  el.addEventListener('click', function() {}, true);
	  el.addEventListener('click', function() {}, false);
	  el.addEventListener('keydown', function() {}, false);
	  return true;
	})();`)

	listeners, err = EventListeners(ctx, r, "#btn")
	require.NoError(t, err)
	require.Len(t, listeners["click"], 2)
	require.Len(t, listeners["keydown"], 1)
	assert.Equal(t, ListenerInfo{Type: "click", UseCapture: true}, listeners["click"][0])
	assert.Equal(t, ListenerInfo{Type: "keydown", UseCapture: false}, listeners["keydown"][0])

	require.NoError(t, RemoveAllListeners(ctx, r, "#btn"))
	listeners, err = EventListeners(ctx, r, "#btn")
	require.NoError(t, err)
	assert.Empty(t, listeners["click"])
	assert.Empty(t, listeners["keydown"])
}

func TestRemoveAllListenersNoElement(t *testing.T) {
	r := newRuntime(t)
	assert.NoError(t, RemoveAllListeners(context.Background(), r, "#missing"))
}

func TestAttachStylesheetAndScript(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t)

	require.NoError(t, AttachStylesheet(ctx, r, "file:///tmp/theme.css"))
	require.NoError(t, AttachScript(ctx, r, "file:///tmp/app.js"))

	assert.Equal(t, "2", evalString(t, r, `document.head.__children.length`))
	assert.Equal(t, `"file:///tmp/theme.css"`, evalString(t, r, `document.head.__children[0].href`))
	assert.Equal(t, `"stylesheet"`, evalString(t, r, `document.head.__children[0].rel`))
	assert.Equal(t, `"file:///tmp/app.js"`, evalString(t, r, `document.head.__children[1].src`))
}

func TestToast(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t)

	// Primitive absent: still no error.
	require.NoError(t, Toast(ctx, r, "saved"))

	evalString(t, r, `window.__domkit_toast = function(m) { globalThis.__lastToast = m; }; true;`)
	require.NoError(t, Toast(ctx, r, "saved again"))
	assert.Equal(t, `"saved again"`, evalString(t, r, `globalThis.__lastToast`))
}

func TestElementSizeRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRuntime(t, "#panel")
	evalString(t, r, `(function() {
	  document.querySelector('#panel').getBoundingClientRect = function() {
	    return { width: 120.5, height: 40 };
	  };
	  return true;
	})();`)

	el := NewElement(r, "#panel")

	width, height, err := el.Size(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 120.5, width, 1e-9)
	assert.InDelta(t, 40, height, 1e-9)

	require.NoError(t, el.SetSize(ctx, 120.5, 40))
	assert.Equal(t, `"120.5px"`, evalString(t, r, `document.querySelector('#panel').style.width`))
	assert.Equal(t, `"40px"`, evalString(t, r, `document.querySelector('#panel').style.height`))
}

func TestElementSizeNoMatch(t *testing.T) {
	r := newRuntime(t)
	el := NewElement(r, "#missing")
	_, _, err := el.Size(context.Background())
	assert.Error(t, err)
}

func TestEscapeJS(t *testing.T) {
	assert.Equal(t, `it\'s a \\path\\`, escapeJS(`it's a \path\`))
	assert.Equal(t, `line1\nline2`, escapeJS("line1\nline2"))
}
