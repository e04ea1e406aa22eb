package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewConsole_Levels(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, zerolog.WarnLevel, NewConsole(&buf, false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, NewConsole(&buf, true).GetLevel())
}

func TestNewWithWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)
	log.Debug().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = NewWithWriter(&buf, true)
	log.Debug().Msg("stage done")
	assert.Contains(t, buf.String(), "stage done")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, true)
	log.Debug().Str("account", "Checking").Msg("resolved")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, "account=Checking")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), NewWithWriter(&buf, true))

	log := FromContext(ctx)
	log.Info().Msg("test")
	assert.NotZero(t, buf.Len())
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := WithFields(NewWithWriter(&buf, true), map[string]any{
		"source": "xero",
		"rows":   4,
	})
	log.Info().Msg("read")

	out := buf.String()
	assert.Contains(t, out, `"source":"xero"`)
	assert.Contains(t, out, `"rows":4`)
}
