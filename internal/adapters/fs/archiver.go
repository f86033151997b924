package fs

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Archiver)(nil)

const (
	archiveFileMode fs.FileMode = 0o644
	archiveDirMode  fs.FileMode = 0o755
)

// archiveModTime is stamped on every entry so that identical trees produce identical archives.
var archiveModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Archiver writes directory trees to zip archives.
type Archiver struct {
	logger ports.Logger
}

// NewArchiver creates a new Archiver.
func NewArchiver(logger ports.Logger) *Archiver {
	return &Archiver{logger: logger}
}

// Build writes one entry per file and directory under src to a zip at archivePath.
// Entry names are slash-separated paths relative to src. Any entry error aborts
// the build and leaves the partial archive on disk.
func (a *Archiver) Build(ctx context.Context, src, archivePath string) error {
	if err := os.MkdirAll(filepath.Dir(archivePath), domain.DirPerm); err != nil {
		return zerr.With(domain.Because(domain.ErrArchiveFailed, err), "path", archivePath)
	}

	out, err := os.Create(archivePath) //nolint:gosec // Path is under the export directory
	if err != nil {
		return zerr.With(domain.Because(domain.ErrArchiveFailed, err), "path", archivePath)
	}
	defer out.Close() //nolint:errcheck // Closed explicitly on success

	zw := zip.NewWriter(out)
	var buf bytes.Buffer
	entries := 0

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(err, "path", path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == src {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(err, "path", path)
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			header := &zip.FileHeader{Name: name + "/", Method: zip.Store, Modified: archiveModTime}
			header.SetMode(fs.ModeDir | archiveDirMode)
			if _, err := zw.CreateHeader(header); err != nil {
				return zerr.With(err, "entry", header.Name)
			}
			entries++
			return nil
		}

		if err := readInto(&buf, path); err != nil {
			return zerr.With(err, "path", path)
		}

		header := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: archiveModTime}
		header.SetMode(archiveFileMode)
		w, err := zw.CreateHeader(header)
		if err != nil {
			return zerr.With(err, "entry", name)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return zerr.With(err, "entry", name)
		}
		entries++
		return nil
	})
	if walkErr != nil {
		return zerr.With(domain.Because(domain.ErrArchiveFailed, walkErr), "archive", archivePath)
	}

	if err := zw.Close(); err != nil {
		return zerr.With(domain.Because(domain.ErrArchiveFailed, err), "archive", archivePath)
	}
	if err := out.Close(); err != nil {
		return zerr.With(domain.Because(domain.ErrArchiveFailed, err), "archive", archivePath)
	}

	a.logger.Debug("archive written", "archive", archivePath, "entries", entries)
	return nil
}

// readInto replaces the content of buf with the file at path.
func readInto(buf *bytes.Buffer, path string) error {
	buf.Reset()
	f, err := os.Open(path) //nolint:gosec // Path comes from a walk of the source tree
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	_, err = io.Copy(buf, f)
	return err
}
