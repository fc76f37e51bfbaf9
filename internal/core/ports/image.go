package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// ImageAssembler builds the two-stage container layout: a builder scope that
// is discarded, and a minimal runtime scope receiving exactly one binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=mocks/mock_image.go -package=mocks
type ImageAssembler interface {
	// Assemble copies the spec's binary out of the package output into a
	// fresh runtime stage and renders its image manifest. A missing binary
	// aborts with domain.ErrBinaryMissing.
	Assemble(ctx context.Context, spec domain.ImageSpec) (domain.RuntimeImage, error)
}
