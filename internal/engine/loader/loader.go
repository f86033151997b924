// Package loader locates and provisions the server installer of a mod loader.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	forgeMaven    = "https://maven.minecraftforge.net/net/minecraftforge/forge"
	neoForgeMaven = "https://maven.neoforged.net/releases/net/neoforged/neoforge"

	// legacyForgePlatform publishes installers under "<mc>-<version>-<mc>".
	legacyForgePlatform = "1.7.10"

	minNeoForgeVersionLen = 10
)

// InstallerURL returns the download URL of the server installer for spec.
// Loaders without an installer artifact return an empty URL and no error.
func InstallerURL(spec domain.RuntimeSpec) (string, error) {
	switch spec.Kind {
	case domain.RuntimeForge:
		segment := spec.PlatformVersion + "-" + spec.Version
		if spec.PlatformVersion == legacyForgePlatform {
			segment += "-" + spec.PlatformVersion
		}
		return fmt.Sprintf("%s/%s/forge-%s-installer.jar", forgeMaven, segment, segment), nil

	case domain.RuntimeNeoForge:
		if len(spec.Version) < minNeoForgeVersionLen {
			return "", domain.Fail(domain.ErrRuntimeFormat, "version", spec.Version, "reason", "neoforge version too short")
		}
		segment := spec.Version[9 : len(spec.Version)-1]
		return fmt.Sprintf("%s/%s.167/neoforge-%s-installer.jar", neoForgeMaven, segment, spec.Version), nil

	case domain.RuntimeFabric:
		return "", nil

	default:
		return "", domain.Fail(domain.ErrUnknownRuntime, "kind", spec.Kind.String())
	}
}

// Locator downloads server installers into the loader staging directory.
type Locator struct {
	downloader ports.Downloader
	logger     ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(downloader ports.Downloader, logger ports.Logger) *Locator {
	return &Locator{downloader: downloader, logger: logger}
}

// Provision downloads the installer for spec into layout.LoaderDir().
// A malformed spec is returned as an error. A failed download is logged and
// swallowed so that the packs are still built without an installer.
func (l *Locator) Provision(ctx context.Context, spec domain.RuntimeSpec, layout domain.Layout) error {
	url, err := InstallerURL(spec)
	if err != nil {
		return err
	}
	if url == "" {
		l.logger.Info("loader has no server installer, skipping", "loader", spec.Kind.String())
		return nil
	}

	dir := layout.LoaderDir()
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		l.logger.Error(zerr.With(domain.Because(domain.ErrWriteFailed, err), "path", dir))
		return nil
	}

	dest := filepath.Join(dir, spec.InstallerFileName())
	l.logger.Info("Downloading server installer", "loader", spec.Kind.String(), "version", spec.Version)
	if err := l.downloader.FetchURL(ctx, url, dest); err != nil {
		l.logger.Error(zerr.With(err, "loader", spec.Kind.String()))
	}
	return nil
}
