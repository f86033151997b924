package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrStageAlreadyExists is returned when attempting to add a stage with a name that already exists.
	ErrStageAlreadyExists = zerr.New("stage already exists")

	// ErrMissingDependency is returned when a stage references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the stage dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrStageFailed is returned when a pipeline stage fails.
	ErrStageFailed = zerr.New("stage execution failed")

	// ErrBuildFailed is returned when the pack build fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrConfigReadFailed is returned when the build file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the build file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned when the build file extension is not recognised.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format, expected .toml, .yaml or .yml")

	// ErrMissingPackInfo is returned when the build file lacks the pack name or version.
	ErrMissingPackInfo = zerr.New("pack name and version are required")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrSettingsParseFailed is returned when environment settings are malformed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings")

	// ErrDownloadSkipped marks an asset deliberately not downloaded. It is not a failure.
	ErrDownloadSkipped = zerr.New("download skipped")

	// ErrMetadataFailed is returned when the catalog metadata lookup fails after all retries.
	ErrMetadataFailed = zerr.New("failed to resolve asset metadata")

	// ErrTransferFailed is returned when the byte transfer fails after all retries.
	ErrTransferFailed = zerr.New("failed to transfer file")

	// ErrWriteFailed is returned when a downloaded file cannot be written to disk.
	ErrWriteFailed = zerr.New("failed to write file")

	// ErrUnexpectedStatus is returned when the catalog answers with a non-2xx status.
	ErrUnexpectedStatus = zerr.New("unexpected http status")

	// ErrRuntimeFormat is returned when a loader identifier or version cannot be parsed.
	ErrRuntimeFormat = zerr.New("malformed runtime loader identifier")

	// ErrUnknownRuntime is returned when a loader kind is not recognised.
	ErrUnknownRuntime = zerr.New("unknown runtime loader kind")

	// ErrArchiveFailed is returned when an archive cannot be written.
	ErrArchiveFailed = zerr.New("failed to build archive")

	// ErrManifestWriteFailed is returned when the rewritten client manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write client manifest")

	// ErrCacheCreateFailed is returned when the catalog cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create catalog cache directory")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read catalog cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write catalog cache entry")

	// ErrCopyFailed is returned when a file cannot be copied into a staging directory.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrInputNotFound is returned when an extra file pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrUnsafeCleanPath is returned when clean would remove the project directory or one of its parents.
	ErrUnsafeCleanPath = zerr.New("refusing to remove project directory")
)

// Fail returns sentinel annotated with alternating key/value metadata.
// The result still satisfies errors.Is(result, sentinel).
func Fail(sentinel error, kv ...any) error {
	err := zerr.Wrap(sentinel, "")
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		err = zerr.With(err, key, kv[i+1])
	}
	return err
}

// Because files cause under sentinel. errors.Is matches both, and the message reads
// "<sentinel>: <cause>".
func Because(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
