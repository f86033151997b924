package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/adapters/telemetry/progrock"
	"go.trai.ch/packsmith/internal/core/ports"
)

func TestNew(t *testing.T) {
	var recorder ports.Telemetry = progrock.New(&bytes.Buffer{})
	assert.NotNil(t, recorder)
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.New(&out)

	ctx := context.Background()
	_, done := recorder.Record(ctx, "238222:7014291")
	done.Complete(nil)

	_, failed := recorder.Record(ctx, "1:2")
	failed.Complete(errors.New("transfer failed"))

	_, cached := recorder.Record(ctx, "3:4")
	cached.Cached()
	cached.Complete(nil)

	_, logged := recorder.Record(ctx, "server-pack")
	logged.Log("merged overrides")
	logged.Complete(nil)

	require.NoError(t, recorder.Close())

	assert.Contains(t, out.String(), "✓ 238222:7014291\n")
	assert.Contains(t, out.String(), "✗ 1:2: transfer failed\n")
	assert.Contains(t, out.String(), "• 3:4 (cached)\n")
	assert.Contains(t, out.String(), "✓ server-pack\n")
	assert.NotContains(t, out.String(), "merged overrides")
}
