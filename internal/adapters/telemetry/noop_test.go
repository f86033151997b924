package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packsmith/internal/adapters/telemetry"
)

func TestNoOp_ReturnsSameContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	got, vertex := telemetry.NoOp{}.Record(ctx, "fetch-mods")
	assert.Equal(t, ctx, got)

	vertex.Log("ignored")
	vertex.Cached()
	vertex.Complete(nil)
	assert.NoError(t, telemetry.NoOp{}.Close())
}
