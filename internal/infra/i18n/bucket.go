// Package i18n loads UI translation bundles from a gocloud.dev blob bucket and serves per-request translators.
package i18n

import (
	"context"
	"log/slog"
	"strings"

	"koostory/config"
	"koostory/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketParams defines the parameters required to open the locale bucket
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the bucket holding {lang}.json bundles and closes it on stop.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucket, err := OpenBucket(context.Background(), params.Config.I18n.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Locale bucket opened", slog.String("location", params.Config.I18n.BucketURL))

	return bucket, nil
}

// OpenBucket accepts a blob URL (file:///srv/locales, mem://) or a plain local directory.
func OpenBucket(ctx context.Context, location string) (*blob.Bucket, error) {
	if !strings.Contains(location, "://") {
		bucket, err := fileblob.OpenBucket(location, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "open locale directory %q", location)
		}

		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, location)
	if err != nil {
		return nil, errors.Wrapf(err, "open locale bucket %q", location)
	}

	return bucket, nil
}
