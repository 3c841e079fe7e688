package headless

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteJavaScript(t *testing.T) {
	ctx := context.Background()
	r, err := New(ctx)
	require.NoError(t, err)

	t.Run("number result", func(t *testing.T) {
		out, err := r.ExecuteJavaScript(ctx, "1 + 1")
		require.NoError(t, err)
		assert.Equal(t, "2", out)
	})

	t.Run("undefined becomes null", func(t *testing.T) {
		out, err := r.ExecuteJavaScript(ctx, "void 0")
		require.NoError(t, err)
		assert.Equal(t, "null", out)
	})

	t.Run("object result", func(t *testing.T) {
		out, err := r.ExecuteJavaScript(ctx, `(function(){ return { a: 1 }; })()`)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, out)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := r.ExecuteJavaScript(ctx, "function(")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := r.ExecuteJavaScript(cancelled, "1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestInsertCSS(t *testing.T) {
	ctx := context.Background()
	r, err := New(ctx)
	require.NoError(t, err)

	require.NoError(t, r.InsertCSS(ctx, "body{color:red}"))
	require.NoError(t, r.InsertCSS(ctx, "p{margin:0}"))

	assert.Equal(t, []string{"body{color:red}", "p{margin:0}"}, r.InsertedCSS())
}

func TestRegisterElement(t *testing.T) {
	ctx := context.Background()
	r, err := New(ctx)
	require.NoError(t, err)

	require.NoError(t, r.RegisterElement("#panel", "div.panel"))

	out, err := r.ExecuteJavaScript(ctx, `document.querySelectorAll('#panel').length`)
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	// Same element reachable through its second selector.
	out, err = r.ExecuteJavaScript(ctx, `document.querySelector('div.panel') === document.querySelector('#panel')`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = r.ExecuteJavaScript(ctx, `document.querySelector('.missing') === null`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}
