package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records pipeline stages as vertices of a build graph.
type Telemetry interface {
	// Record starts recording a new vertex for the named stage.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the stage's output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the stage's error stream.
	Stderr() io.Writer

	// Log records a structured message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)

	// Cached marks the vertex as a cache hit.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex attaches a vertex to the context so nested stages can
// write to the enclosing recording.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex attached to ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
