package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathHolderConsumesOnce(t *testing.T) {
	h := &PathHolder{}
	h.Set("/tmp/kaaba.jpg")

	path, err := h.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kaaba.jpg", path)

	_, err = h.Next(context.Background())
	assert.ErrorIs(t, err, capture.ErrCancelled)
}

func TestPathHolderEmptyIsCancelled(t *testing.T) {
	h := &PathHolder{}
	_, err := h.Next(context.Background())
	assert.ErrorIs(t, err, capture.ErrCancelled)
}
