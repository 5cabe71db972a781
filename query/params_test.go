package query

import (
	"slices"
	"testing"

	"github.com/indigo-web/weblinq/strs"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	t.Run("grouping", func(t *testing.T) {
		params := ParseParams("x=1&x=2")
		require.Equal(t, 1, params.Len())
		require.True(t, params.Values("x").Equal(strs.FromArray([]string{"1", "2"})))
	})

	t.Run("order", func(t *testing.T) {
		params := ParseParams("?b=1&a=2&b=3&c")
		require.Equal(t, []string{"b", "a", "c"}, slices.Collect(params.Keys()))
		require.True(t, params.Values("b").EqualSlice([]string{"1", "3"}))
		require.True(t, params.Values("a").EqualString("2"))
	})

	t.Run("flag folds into empty string", func(t *testing.T) {
		params := ParseParams("debug&debug=1")
		require.True(t, params.Values("debug").EqualSlice([]string{"", "1"}))

		params = ParseParams("debug")
		values := params.Values("debug")
		require.True(t, values.EqualString(""))
		require.True(t, values.IsEmpty())
		require.False(t, values.Equal(strs.Empty))
	})

	t.Run("case sensitive names", func(t *testing.T) {
		params := ParseParams("a=1&A=2")
		require.Equal(t, 2, params.Len())
		require.Equal(t, "1", params.Value("a"))
		require.Equal(t, "2", params.Value("A"))
	})

	t.Run("empty", func(t *testing.T) {
		require.True(t, ParseParams("").Empty())
		require.True(t, ParseParams("?").Empty())
		require.True(t, ParseParams("&&").Empty())
	})

	t.Run("collect consumes any sequence", func(t *testing.T) {
		pairs := []Pair{pair("a", "1"), flag("b"), pair("a", "2")}
		params := Collect(slices.Values(pairs))
		require.Equal(t, []string{"a", "b"}, slices.Collect(params.Keys()))
		require.True(t, params.Values("a").EqualSlice([]string{"1", "2"}))
	})
}
