package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name("golove"),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)
	return parser
}

func TestCLIParsing(t *testing.T) {
	t.Run("function with flags", func(t *testing.T) {
		cli := CLI{}
		ctx, err := newTestParser(t, &cli).Parse([]string{
			"--host", "10.0.0.69", "function", "12", "-a", "vibrate", "-t", "5",
		})
		require.NoError(t, err)
		assert.Equal(t, "function <strength>", ctx.Command())
		assert.Equal(t, "10.0.0.69", cli.Host)
		assert.Equal(t, 12, cli.Function.Strength)
		assert.Equal(t, []string{"vibrate"}, cli.Function.Action)
		assert.Equal(t, 5.0, cli.Function.Duration)
	})

	t.Run("pattern steps argument", func(t *testing.T) {
		cli := CLI{}
		ctx, err := newTestParser(t, &cli).Parse([]string{"pattern", "0,10,20", "-i", "200"})
		require.NoError(t, err)
		assert.Equal(t, "pattern <steps>", ctx.Command())
		assert.Equal(t, "0,10,20", cli.Pattern.Steps)
		assert.Equal(t, 200, cli.Pattern.Interval)
	})

	t.Run("defaults", func(t *testing.T) {
		cli := CLI{}
		_, err := newTestParser(t, &cli).Parse([]string{"stop"})
		require.NoError(t, err)
		assert.Equal(t, "golove", cli.AppName)
		assert.False(t, cli.JSON)
	})

	t.Run("missing strength argument fails", func(t *testing.T) {
		cli := CLI{}
		_, err := newTestParser(t, &cli).Parse([]string{"function"})
		require.Error(t, err)
	})
}
