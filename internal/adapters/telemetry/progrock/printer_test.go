package progrock_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	printer "go.trai.ch/packsmith/internal/adapters/telemetry/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestPrinter_WriteStatus(t *testing.T) {
	var out bytes.Buffer
	p := printer.NewPrinter(&out)

	failure := "stage execution failed"
	now := timestamppb.Now()

	require.NoError(t, p.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "a", Name: "fetch-mods"},
			{Id: "b", Name: "fetch-runtime", Completed: now},
		},
	}))
	require.NoError(t, p.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "a", Name: "fetch-mods", Completed: now, Error: &failure},
			{Id: "b", Name: "fetch-runtime", Completed: now},
			{Id: "c", Name: "1:2", Completed: now, Cached: true},
		},
	}))

	assert.Equal(t, "✓ fetch-runtime\n✗ fetch-mods: stage execution failed\n• 1:2 (cached)\n", out.String())
	assert.NoError(t, p.Close())
}
