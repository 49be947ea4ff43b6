package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	require.Same(t, logger, loggerFromContext(ctx))

	loggerFromContext(ctx).Debug("loaded", "rows", 3)
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "rows=3")
}

func TestLoggerFromContextFallback(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
