// Package fetch downloads the assets of a manifest into the mods staging directory.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Batch fans asset downloads out over a bounded pool.
type Batch struct {
	downloader  ports.Downloader
	logger      ports.Logger
	telemetry   ports.Telemetry
	concurrency int
}

// NewBatch creates a Batch running at most concurrency downloads at once.
func NewBatch(downloader ports.Downloader, logger ports.Logger, telemetry ports.Telemetry, concurrency int) *Batch {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Batch{
		downloader:  downloader,
		logger:      logger,
		telemetry:   telemetry,
		concurrency: concurrency,
	}
}

type counters struct {
	fetched, cached, excluded, unavailable, failed atomic.Int64
}

// Fetch downloads every non-excluded asset into layout.ModsDir(). A failed asset is
// logged and counted; it never stops the rest of the batch. The only errors returned
// are an unusable mods directory and cancellation of ctx.
func (b *Batch) Fetch(
	ctx context.Context,
	assets []domain.AssetRef,
	layout domain.Layout,
	exclusions domain.ExclusionSet,
) (*domain.FetchReport, error) {
	modsDir := layout.ModsDir()
	if err := os.MkdirAll(modsDir, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.Because(domain.ErrWriteFailed, err), "path", modsDir)
	}

	var (
		seq atomic.Int64
		c   counters
	)
	total := 0
	for _, ref := range assets {
		if !exclusions.Contains(ref.ProjectID) {
			total++
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for _, ref := range assets {
		if exclusions.Contains(ref.ProjectID) {
			b.logger.Warn("excluded from server pack, skipping", "project_id", ref.ProjectID, "file_id", ref.FileID)
			c.excluded.Add(1)
			continue
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			n := seq.Add(1)
			b.logger.Info(fmt.Sprintf("Downloading (%03d/%03d)", n, total),
				"project_id", ref.ProjectID, "file_id", ref.FileID)
			b.fetchOne(gctx, ref, modsDir, &c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.FetchReport{
		ModsDir:     modsDir,
		Fetched:     int(c.fetched.Load()),
		Cached:      int(c.cached.Load()),
		Excluded:    int(c.excluded.Load()),
		Unavailable: int(c.unavailable.Load()),
		Failed:      int(c.failed.Load()),
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	b.logger.Info("mods fetched",
		"fetched", report.Fetched,
		"cached", report.Cached,
		"excluded", report.Excluded,
		"unavailable", report.Unavailable,
		"failed", report.Failed,
	)
	return report, nil
}

func (b *Batch) fetchOne(ctx context.Context, ref domain.AssetRef, modsDir string, c *counters) {
	ctx, vertex := b.telemetry.Record(ctx, ref.Key())

	res, err := b.downloader.FetchAsset(ctx, ref, modsDir)
	switch {
	case errors.Is(err, domain.ErrDownloadSkipped):
		b.logger.Warn("asset unavailable, skipping", "project_id", ref.ProjectID, "file_id", ref.FileID, "reason", err.Error())
		vertex.Log(err.Error())
		vertex.Complete(nil)
		c.unavailable.Add(1)
	case err != nil:
		b.logger.Error(zerr.With(err, "file_id", ref.FileID), "project_id", ref.ProjectID)
		vertex.Complete(err)
		c.failed.Add(1)
	case res.Cached:
		vertex.Cached()
		vertex.Complete(nil)
		c.cached.Add(1)
	default:
		vertex.Log(res.Path)
		vertex.Complete(nil)
		c.fetched.Add(1)
	}
}
