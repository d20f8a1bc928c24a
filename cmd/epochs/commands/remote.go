package commands

import (
	"context"
	"time"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	"epochs/internal/services/decode"
)

// The helpers below route to epochsd when --server is set and to the local
// decode service otherwise.

func listSchemes(ctx context.Context) ([]domain.SchemeInfo, error) {
	if appCtx.Remote == nil {
		return appCtx.Decode.Schemes(), nil
	}
	return appCtx.Remote.Schemes(ctx)
}

func decodeRaw(ctx context.Context, scheme epoch.Scheme, raw int64) (domain.Decoded, error) {
	if appCtx.Remote == nil {
		return appCtx.Decode.Decode(scheme, raw)
	}
	resp, err := appCtx.Remote.Convert(ctx, scheme, raw)
	if err != nil {
		return domain.Decoded{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, resp.RFC3339)
	if err != nil {
		return domain.Decoded{}, err
	}
	layout, _ := decode.ParseLayout(appCtx.Config.Layout)
	d := domain.Decoded{
		Scheme:   scheme,
		Raw:      raw,
		Time:     t.UTC(),
		Text:     decode.Format(t.UTC(), layout),
		Fallback: resp.Fallback,
	}
	if resp.Fallback {
		d.Err = remoteReason(resp.Error)
	}
	return d, nil
}

func encodeTime(ctx context.Context, scheme epoch.Scheme, t time.Time) (int64, error) {
	if appCtx.Remote == nil {
		return appCtx.Decode.Encode(scheme, t)
	}
	return appCtx.Remote.Encode(ctx, scheme, t)
}

type remoteReason string

func (r remoteReason) Error() string { return string(r) }
