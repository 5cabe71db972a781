package strs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	for _, tc := range []struct {
		S    Strings
		JSON string
	}{
		{Empty, `null`},
		{FromScalar("a"), `"a"`},
		{Of("a", "b"), `["a","b"]`},
	} {
		data, err := json.Marshal(tc.S)
		require.NoError(t, err)
		require.Equal(t, tc.JSON, string(data))

		var decoded Strings
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.True(t, decoded.Equal(tc.S), tc.JSON)
	}

	t.Run("normalize shape", func(t *testing.T) {
		var s Strings
		require.NoError(t, json.Unmarshal([]byte(`["a"]`), &s))
		require.Equal(t, single, s.kind)
		require.NoError(t, json.Unmarshal([]byte(`[]`), &s))
		require.Equal(t, none, s.kind)
	})

	t.Run("in a struct", func(t *testing.T) {
		data, err := json.Marshal(struct {
			Accept Strings `json:"accept"`
		}{Of("text/html", "*/*")})
		require.NoError(t, err)
		require.Equal(t, `{"accept":["text/html","*/*"]}`, string(data))
	})

	t.Run("malformed", func(t *testing.T) {
		var s Strings
		require.Error(t, json.Unmarshal([]byte(`[1, 2]`), &s))
	})
}
