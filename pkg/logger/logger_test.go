package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestNew_WritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: "info", Service: "listings"})

	l.Debug().Msg("hidden")
	l.Info().Str(FieldCacheKey, "k").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "listings", line[FieldService])
	assert.Equal(t, "k", line[FieldCacheKey])
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	assert.Same(t, L(), Ctx(context.Background()))

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, Config{}))
	Ctx(ctx).Info().Msg("scoped")
	assert.Contains(t, buf.String(), "scoped")
}
