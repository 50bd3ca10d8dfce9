// Package ports defines the contracts between the routebook use cases and the
// adapters that read manifests, hold the active delivery and load route files.
package ports

import (
	"context"

	"routebook/internal/core/domain/model/delivery"
)

// ManifestReader turns a manifest location into a Delivery.
type ManifestReader interface {
	// Read parses the manifest at path into a new Delivery.
	//
	// Errors are classified with errors.Is:
	//   - errs.ErrFileIsInaccessible: the manifest could not be opened or read
	//   - errs.ErrFormatIsInvalid: the manifest breaks the block grammar
	Read(ctx context.Context, path string) (*delivery.Delivery, error)
}
