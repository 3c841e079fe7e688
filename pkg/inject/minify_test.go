package inject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinify(t *testing.T) {
	mf := NewMinifier()

	raw := "body {\n  color: red;\n  margin: 0px;\n}\n"
	result, err := mf.Minify(raw)
	require.NoError(t, err)

	assert.Less(t, len(result.Styles), len(raw))
	assert.Contains(t, result.Styles, "color:red")
	assert.False(t, strings.Contains(result.Styles, "\n"))
	assert.Greater(t, result.Efficiency, 0.0)
	assert.Less(t, result.Efficiency, 1.0)
}

func TestMinifyAlreadyMinimal(t *testing.T) {
	mf := NewMinifier()

	result, err := mf.Minify("a{color:red}")
	require.NoError(t, err)
	assert.Equal(t, "a{color:red}", result.Styles)
	assert.Equal(t, 0.0, result.Efficiency)
}
