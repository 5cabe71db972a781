package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRawQuery(t *testing.T) {
	for _, tc := range []struct {
		Input, Want string
	}{
		{"a=1&b", "a=1&b"},
		{"?a=1", "?a=1"},
		{"a=?", "a=?"},
		{"https://example.com/search?q=go#top", "q=go"},
		{"https://example.com/", ""},
		{"/path?x=1&x=2", "x=1&x=2"},
	} {
		require.Equal(t, tc.Want, rawQuery(tc.Input), tc.Input)
	}
}

func TestRun(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("grouped", func(t *testing.T) {
		var out bytes.Buffer
		err := run(options{}, []string{"b=1&a=x&b=2&flag", ""}, nil, &out, logger)
		require.NoError(t, err)
		require.Equal(t, `{"b":["1","2"],"a":"x","flag":""}`+"\n"+`{}`+"\n", out.String())
	})

	t.Run("pairs", func(t *testing.T) {
		var out bytes.Buffer
		err := run(options{Pairs: true}, []string{"https://x/?q=a+b&flag"}, nil, &out, logger)
		require.NoError(t, err)
		require.Equal(t, `[{"name":"q","value":"a b"},{"name":"flag","value":null}]`+"\n", out.String())
	})

	t.Run("stdin", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("x=1\n\n  y=%41  \n")
		err := run(options{}, nil, in, &out, logger)
		require.NoError(t, err)
		require.Equal(t, `{"x":"1"}`+"\n"+`{"y":"A"}`+"\n", out.String())
	})
}
