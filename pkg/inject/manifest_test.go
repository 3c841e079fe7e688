package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		m, err := ParseManifest("")
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, "[]", m.Encode())
	})

	t.Run("valid", func(t *testing.T) {
		m, err := ParseManifest(`["a.css","b.css"]`)
		require.NoError(t, err)
		assert.True(t, m.Contains("a.css"))
		assert.True(t, m.Contains("b.css"))
		assert.False(t, m.Contains("c.css"))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseManifest("{broken")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "{broken", parseErr.Raw)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := ParseManifest(`{"a":1}`)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestManifestAddSetSemantics(t *testing.T) {
	m, err := ParseManifest(`["a.css"]`)
	require.NoError(t, err)

	m.Add("b.css")
	m.Add("a.css")
	m.Add("b.css")

	assert.Equal(t, []string{"a.css", "b.css"}, m.Paths())
	assert.Equal(t, `["a.css","b.css"]`, m.Encode())
}

func TestManifestRoundTrip(t *testing.T) {
	m, err := ParseManifest("")
	require.NoError(t, err)
	m.Add("one.css")
	m.Add("two.css")

	again, err := ParseManifest(m.Encode())
	require.NoError(t, err)
	assert.Equal(t, m.Paths(), again.Paths())
}

func TestManifestPathsIsCopy(t *testing.T) {
	m, err := ParseManifest(`["a.css"]`)
	require.NoError(t, err)

	paths := m.Paths()
	paths[0] = "mutated.css"
	assert.True(t, m.Contains("a.css"))
}
