// Package download writes remote content to disk exactly once.
package download

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/packsmith/internal/engine/retry"
	"go.trai.ch/zerr"
)

var _ ports.Downloader = (*Downloader)(nil)

// Downloader implements ports.Downloader on top of a catalog.
//
// A destination that already exists is never fetched again and its content is not
// re-validated. Bodies are buffered in memory and written with a single write, so a
// failed transfer never leaves a partial file behind.
type Downloader struct {
	catalog ports.Catalog
	store   ports.ResolutionStore
	logger  ports.Logger
	policy  retry.Policy
}

// NewDownloader creates a Downloader. store may be nil to always query the catalog.
func NewDownloader(catalog ports.Catalog, store ports.ResolutionStore, logger ports.Logger, policy retry.Policy) *Downloader {
	return &Downloader{
		catalog: catalog,
		store:   store,
		logger:  logger,
		policy:  policy,
	}
}

// FetchAsset resolves ref and writes it to dir/<catalog file name>.
func (d *Downloader) FetchAsset(ctx context.Context, ref domain.AssetRef, dir string) (domain.FetchResult, error) {
	file, err := d.resolve(ctx, ref)
	if err != nil {
		return domain.FetchResult{}, err
	}

	if file.DownloadURL == "" {
		// Projects that opt out of third-party distribution have no download URL.
		return domain.FetchResult{}, domain.Fail(domain.ErrDownloadSkipped,
			"project_id", ref.ProjectID, "reason", "no download url")
	}

	name := filepath.Base(file.FileName)
	if name != file.FileName || name == "." || name == ".." {
		return domain.FetchResult{}, domain.Fail(domain.ErrMetadataFailed,
			"project_id", ref.ProjectID, "file_name", file.FileName)
	}

	dest := filepath.Join(dir, name)
	if exists(dest) {
		d.logger.Debug("already present, skipping download", "path", dest)
		return domain.FetchResult{Path: dest, Cached: true}, nil
	}

	if err := d.transfer(ctx, file.DownloadURL, dest); err != nil {
		return domain.FetchResult{}, zerr.With(err, "project_id", ref.ProjectID)
	}
	return domain.FetchResult{Path: dest}, nil
}

// FetchURL writes the body at url to dest unless dest already exists.
func (d *Downloader) FetchURL(ctx context.Context, url, dest string) error {
	if exists(dest) {
		d.logger.Debug("already present, skipping download", "path", dest)
		return nil
	}
	return d.transfer(ctx, url, dest)
}

func (d *Downloader) transfer(ctx context.Context, url, dest string) error {
	body, err := retry.Do(ctx, d.logger, d.policy, func(ctx context.Context) ([]byte, error) {
		return d.catalog.Download(ctx, url)
	})
	if err != nil {
		return zerr.With(domain.Because(domain.ErrTransferFailed, err), "url", url)
	}

	if err := os.WriteFile(dest, body, domain.FilePerm); err != nil { //nolint:gosec // dest is built from the staging layout
		return zerr.With(domain.Because(domain.ErrWriteFailed, err), "path", dest)
	}
	return nil
}

func (d *Downloader) resolve(ctx context.Context, ref domain.AssetRef) (domain.RemoteFile, error) {
	if d.store != nil {
		cached, err := d.store.Get(ref)
		if err != nil {
			d.logger.Warn("ignoring unreadable cache entry", "project_id", ref.ProjectID, "file_id", ref.FileID, "error", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	file, err := retry.Do(ctx, d.logger, d.policy, func(ctx context.Context) (domain.RemoteFile, error) {
		return d.catalog.ResolveFile(ctx, ref)
	})
	if err != nil {
		metaErr := zerr.With(domain.Because(domain.ErrMetadataFailed, err), "project_id", ref.ProjectID)
		return domain.RemoteFile{}, zerr.With(metaErr, "file_id", ref.FileID)
	}

	if d.store != nil {
		if err := d.store.Put(ref, file); err != nil {
			d.logger.Warn("failed to cache catalog lookup", "project_id", ref.ProjectID, "error", err)
		}
	}
	return file, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
