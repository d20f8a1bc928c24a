package interfaces

import (
	"context"
	"io"
	"time"

	domaintypes "epochs/internal/domain/types"
	"epochs/internal/epoch"
)

// DecodeService converts and renders timestamps for the front ends.
type DecodeService interface {
	Schemes() []domaintypes.SchemeInfo
	Decode(scheme epoch.Scheme, raw int64) (domaintypes.Decoded, error)
	Encode(scheme epoch.Scheme, t time.Time) (int64, error)
	Last() (domaintypes.State, error)
	Batch(
		ctx context.Context,
		r io.Reader,
		w io.Writer,
		scheme epoch.Scheme,
	) (domaintypes.BatchReport, error)
}
