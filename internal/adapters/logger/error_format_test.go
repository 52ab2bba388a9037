package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Parallel()

	err := zerr.Wrap(zerr.Wrap(errors.New("disk full"), "middle"), "outer")
	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 3)
	assert.Equal(t, "outer", entries[0].Message())
	assert.Equal(t, "middle", entries[1].Message())
	assert.Equal(t, "disk full", entries[2].Message())
}

func TestCollectErrorEntries_JoinedStopsWalk(t *testing.T) {
	t.Parallel()

	err := errors.Join(errors.New("first"), errors.New("second"))
	entries := logger.CollectErrorEntries(zerr.Wrap(err, "build failed"))
	require.Len(t, entries, 2)
	assert.Equal(t, "first\nsecond", entries[1].Message())

	out := logger.FormatErrorEntries(entries)
	assert.Equal(t, "Error: build failed\n\n  Caused by:\n    → first\n      second", out)
}
