package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nobsign "github.com/iromli/go-nobsign"
)

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := nobsign.Config{Secret: "my-key", MaxAge: 60}

	t.Run("sign", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(cfg, []string{"sign", "value"}, &out))
		assert.Equal(t, "value.EWkF3-80sipsPgLQ01NuTuPb0jQ\n", out.String())
	})

	t.Run("unsign", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(cfg, []string{"unsign", "value.EWkF3-80sipsPgLQ01NuTuPb0jQ"}, &out))
		assert.Equal(t, "value\n", out.String())
	})

	t.Run("timed round trip", func(t *testing.T) {
		var signed bytes.Buffer
		require.NoError(t, run(cfg, []string{"sign", "-t", "value"}, &signed))
		token := strings.TrimSpace(signed.String())
		assert.Len(t, strings.Split(token, "."), 3)

		var out bytes.Buffer
		require.NoError(t, run(cfg, []string{"unsign", "-t", "-max-age", "100", token}, &out))
		assert.Equal(t, "value\n", out.String())
	})

	t.Run("bad signature", func(t *testing.T) {
		var out bytes.Buffer
		err := run(cfg, []string{"unsign", "value.ABCDEF"}, &out)
		assert.ErrorIs(t, err, nobsign.ErrBadSignature)
		assert.Empty(t, out.String())
	})

	t.Run("plain token with -t", func(t *testing.T) {
		var out bytes.Buffer
		err := run(cfg, []string{"unsign", "-t", "value.EWkF3-80sipsPgLQ01NuTuPb0jQ"}, &out)
		assert.ErrorIs(t, err, nobsign.ErrBadTimeSignature)
	})

	t.Run("usage errors", func(t *testing.T) {
		for _, args := range [][]string{
			nil,
			{"sign"},
			{"sign", "a", "b"},
			{"verify", "value"},
			{"unsign", "-unknown", "value"},
		} {
			err := run(cfg, args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage, "%v", args)
		}
	})
}
