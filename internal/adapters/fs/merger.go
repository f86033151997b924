package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TreeMerger = (*Merger)(nil)

// Merger copies directory trees file by file through a bounded pool.
// Empty directories in the source are not reproduced in the destination.
type Merger struct {
	walker      *Walker
	logger      ports.Logger
	concurrency int
}

// NewMerger creates a Merger running at most concurrency copies at once.
func NewMerger(walker *Walker, logger ports.Logger, concurrency int) *Merger {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Merger{
		walker:      walker,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Merge copies every regular file under src to the same relative path under dst,
// overwriting existing files. Files that fail to copy are logged and do not stop
// the others.
func (m *Merger) Merge(ctx context.Context, src, dst string) (bool, error) {
	if !isDir(src) {
		m.logger.Warn("source is not a directory, skipping merge", "src", src, "dst", dst)
		return true, nil
	}
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil || !isDir(dst) {
		m.logger.Warn("destination is not a directory, skipping merge", "src", src, "dst", dst)
		return true, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for rel, err := range m.walker.WalkFiles(src) {
		if err != nil {
			m.logger.Error(zerr.With(domain.Because(domain.ErrCopyFailed, err), "path", rel))
			continue
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			from := filepath.Join(src, rel)
			to := filepath.Join(dst, rel)
			if err := copyFile(from, to); err != nil {
				m.logger.Error(zerr.With(domain.Because(domain.ErrCopyFailed, err), "path", from))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.logger.Debug("merged tree", "src", src, "dst", dst)
	return false, nil
}

// CopyFile copies the file at src to dst, overwriting dst.
func (m *Merger) CopyFile(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return zerr.With(domain.Because(domain.ErrCopyFailed, err), "path", src)
	}
	return nil
}

func copyFile(from, to string) error {
	if err := os.MkdirAll(filepath.Dir(to), domain.DirPerm); err != nil {
		return err
	}

	in, err := os.Open(from) //nolint:gosec // Path comes from a walk of the source tree
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is under the staging tree
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
