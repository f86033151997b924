package ports

import "context"

// Telemetry records progress of units of work.
type Telemetry interface {
	// Record starts tracking a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is one tracked unit of work.
type Vertex interface {
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)

	// Cached marks the vertex as satisfied without doing work.
	Cached()

	// Log appends a line of output to the vertex.
	Log(msg string)
}
