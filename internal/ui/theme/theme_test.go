package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsDark(t *testing.T) {
	t.Cleanup(func() { Apply(Dark) })

	assert.True(t, IsDark())
	assert.Equal(t, Dark.Primary, Primary)
}

func TestToggle(t *testing.T) {
	t.Cleanup(func() { Apply(Dark) })
	Apply(Dark)

	p := Toggle()
	assert.Equal(t, "light", p.Name)
	assert.False(t, IsDark())
	assert.Equal(t, Light.Text, Text)
	assert.Equal(t, Light.BgCard, BgCard)

	p = Toggle()
	assert.Equal(t, "dark", p.Name)
	assert.Equal(t, Dark.Text, Text)
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Apply(Dark) })

	require.NoError(t, Set("light"))
	assert.Equal(t, "light", Current().Name)

	require.NoError(t, Set("dark"))
	assert.Equal(t, "dark", Current().Name)

	assert.Error(t, Set("neon"))
	assert.Equal(t, "dark", Current().Name)
}
