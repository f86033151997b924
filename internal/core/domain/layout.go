package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".packsmith"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// CatalogDirName is the name of the catalog resolution cache directory.
	CatalogDirName = "catalog"

	// ConfigFileName is the default build file name.
	ConfigFileName = "packsmith.toml"

	// ManifestFileName is the default manifest file name.
	ManifestFileName = "manifest.json"

	// LogFileName is the default log file name.
	LogFileName = "packsmith.log"

	// DefaultOutputDir is the default build output directory.
	DefaultOutputDir = "build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	modsDirName     = "mods"
	serverDirName   = ".server"
	clientDirName   = ".client"
	exportedDirName = "exported"
	loaderDirName   = "loader"
)

// DefaultCatalogCachePath returns the default path for the catalog resolution cache.
// It joins .packsmith, cache, and catalog.
func DefaultCatalogCachePath() string {
	return filepath.Join(StateDirName, CacheDirName, CatalogDirName)
}

// Layout names the role-specific directories of one build's staging tree.
type Layout struct {
	Root string
}

// NewLayout returns the layout rooted at the given output directory.
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// ModsDir holds assets fetched for the server pack.
func (l Layout) ModsDir() string {
	return filepath.Join(l.Root, modsDirName)
}

// ServerDir is the server pack staging tree.
func (l Layout) ServerDir() string {
	return filepath.Join(l.Root, serverDirName)
}

// ClientDir is the client pack staging tree.
func (l Layout) ClientDir() string {
	return filepath.Join(l.Root, clientDirName)
}

// ExportDir holds the final archives.
func (l Layout) ExportDir() string {
	return filepath.Join(l.Root, exportedDirName)
}

// LoaderDir holds the runtime installer.
func (l Layout) LoaderDir() string {
	return filepath.Join(l.Root, loaderDirName)
}

// ServerArchive returns the server pack path, "<name>-v<version>-server.zip".
func (l Layout) ServerArchive(info PackInfo) string {
	return filepath.Join(l.ExportDir(), info.Name+"-v"+info.Version+"-server.zip")
}

// ClientArchive returns the client pack path, "<name>-v<version>-client.zip".
func (l Layout) ClientArchive(info PackInfo) string {
	return filepath.Join(l.ExportDir(), info.Name+"-v"+info.Version+"-client.zip")
}

// ClientManifest returns the path of the rewritten manifest in the client tree.
func (l Layout) ClientManifest() string {
	return filepath.Join(l.ClientDir(), ManifestFileName)
}
