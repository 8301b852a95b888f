package modrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParams_WithString(t *testing.T) {
	values, err := NewQueryParams().
		WithString("algorithm", "sha512").
		ToValues()
	require.NoError(t, err)

	assert.Equal(t, "sha512", values.Get("algorithm"))
}

func TestQueryParams_WithStringList(t *testing.T) {
	values, err := NewQueryParams().
		WithStringList("loaders", []string{"forge", "fabric"}).
		ToValues()
	require.NoError(t, err)

	assert.Equal(t, `["forge","fabric"]`, values.Get("loaders"))
	assert.Equal(t, "loaders=%5B%22forge%22%2C%22fabric%22%5D", values.Encode())
}

func TestQueryParams_WithBool(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		values, err := NewQueryParams().WithBool("featured", true).ToValues()
		require.NoError(t, err)
		assert.Equal(t, "true", values.Get("featured"))
	})

	t.Run("false", func(t *testing.T) {
		values, err := NewQueryParams().WithBool("featured", false).ToValues()
		require.NoError(t, err)
		assert.Equal(t, "false", values.Get("featured"))
	})
}

func TestQueryParams_WithIDs(t *testing.T) {
	values, err := NewQueryParams().
		WithIDs([]string{"AANobbMI", "P7dR8mSH"}).
		ToValues()
	require.NoError(t, err)

	assert.Equal(t, `["AANobbMI","P7dR8mSH"]`, values.Get("ids"))
}

func TestQueryParams_Empty(t *testing.T) {
	values, err := NewQueryParams().ToValues()
	require.NoError(t, err)

	assert.Empty(t, values)
	assert.Empty(t, values.Encode())
}

func TestQueryParams_DeterministicEncoding(t *testing.T) {
	build := func() string {
		values, err := NewQueryParams().
			WithStringList("loaders", []string{"forge"}).
			WithBool("featured", true).
			WithStringList("game_versions", []string{"1.20.1"}).
			ToValues()
		require.NoError(t, err)

		return values.Encode()
	}

	first := build()
	assert.Equal(t, "featured=true&game_versions=%5B%221.20.1%22%5D&loaders=%5B%22forge%22%5D", first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestQueryParams_Chaining(t *testing.T) {
	params := NewQueryParams()
	returned := params.WithString("a", "1").WithBool("b", true)

	assert.Same(t, params, returned)
}
