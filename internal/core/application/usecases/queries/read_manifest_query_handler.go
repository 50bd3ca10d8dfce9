package queries

import (
	"context"

	"routebook/internal/core/ports"
)

// ReadManifestQueryHandler parses manifests through a ports.ManifestReader.
type ReadManifestQueryHandler struct {
	reader ports.ManifestReader
}

// NewReadManifestQueryHandler creates a handler backed by reader.
func NewReadManifestQueryHandler(reader ports.ManifestReader) ReadManifestQueryHandler {
	return ReadManifestQueryHandler{reader: reader}
}

// Handle reads the manifest. Reader errors are returned unwrapped so callers
// can tell an inaccessible file from a malformed one.
func (h ReadManifestQueryHandler) Handle(
	ctx context.Context,
	query ReadManifestQuery,
) (ReadManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ReadManifestQueryResponse{}, err
	}

	d, err := h.reader.Read(ctx, query.Path())
	if err != nil {
		return ReadManifestQueryResponse{}, err
	}

	return ReadManifestQueryResponse{
		Delivery: d,
		Orders:   d.SortedOrders(),
	}, nil
}
