// Package snapshot renders route maps to JPEG images stored next to the ledger.
package snapshot

import (
	"bytes"
	"context"
	"image/jpeg"
	"log/slog"

	"koerplan/config"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/service"
	"koerplan/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// BucketOpener opens the bucket an image is written to
type BucketOpener func(ctx context.Context, dir string) (*blob.Bucket, error)

// OpenFileBucket opens a local directory as a bucket, creating it if needed
func OpenFileBucket(_ context.Context, dir string) (*blob.Bucket, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", dir)
	}

	return bucket, nil
}

// Capturer implements service.MapCapturer
type Capturer struct {
	width   int
	height  int
	quality int
	open    BucketOpener
	logger  *slog.Logger
}

// NewCapturer creates a map capturer writing to local directories
func NewCapturer(cfg *config.Config, logger *slog.Logger) service.MapCapturer {
	return NewCapturerWithOpener(cfg, OpenFileBucket, logger)
}

// NewCapturerWithOpener creates a map capturer using a custom bucket opener
func NewCapturerWithOpener(cfg *config.Config, open BucketOpener, logger *slog.Logger) *Capturer {
	return &Capturer{
		width:   cfg.Snapshot.Width,
		height:  cfg.Snapshot.Height,
		quality: cfg.Snapshot.Quality,
		open:    open,
		logger:  logger,
	}
}

// Capture renders req.Routes and stores the JPEG as req.Name in req.Dir
func (c *Capturer) Capture(ctx context.Context, req service.CaptureRequest) error {
	if req.Name == "" {
		return domainerrors.ErrCaptureFailed.WithDetails("image name is empty")
	}

	img, err := render(req.Routes, req.Dashed, c.width, c.height)
	if err != nil {
		return domainerrors.ErrCaptureFailed.WithCause(err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.quality}); err != nil {
		return domainerrors.ErrCaptureFailed.WithCause(errors.Wrap(err, "encode jpeg"))
	}

	bucket, err := c.open(ctx, req.Dir)
	if err != nil {
		return domainerrors.ErrCaptureFailed.WithCause(err)
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			c.logger.Warn("Failed to close snapshot bucket", slog.Any("error", closeErr))
		}
	}()

	if err := bucket.WriteAll(ctx, req.Name, buf.Bytes(), &blob.WriterOptions{ContentType: "image/jpeg"}); err != nil {
		return domainerrors.ErrCaptureFailed.WithCause(errors.Wrapf(err, "write %s", req.Name))
	}

	c.logger.Info("Map snapshot saved",
		slog.String("dir", req.Dir),
		slog.String("name", req.Name),
		slog.String("size", util.FormatBytes(int64(buf.Len()))),
	)

	return nil
}
