package manifestfile

import (
	"context"
	"log/slog"
	"os"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/ports"
	"routebook/internal/pkg/errs"
)

// Reader reads manifests from the local filesystem.
type Reader struct {
	logger *slog.Logger
}

var _ ports.ManifestReader = (*Reader)(nil)

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger: logger.With("component", "manifest_reader"),
	}
}

// Read opens path, parses it with Parse and closes it again, whether or not
// parsing succeeds.
func (r *Reader) Read(ctx context.Context, path string) (*delivery.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		r.logger.WarnContext(ctx, "Manifest could not be opened", "path", path, "error", err)
		return nil, errs.NewFileIsInaccessibleErrorWithCause(path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := Parse(f, path)
	if err != nil {
		r.logger.WarnContext(ctx, "Manifest rejected", "path", path, "error", err)
		return nil, err
	}

	r.logger.InfoContext(ctx, "Manifest parsed",
		"path", path,
		"delivery_id", d.ID().String(),
		"orders", d.Count(),
	)
	return d, nil
}
