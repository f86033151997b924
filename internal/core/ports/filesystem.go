package ports

import "context"

// TreeMerger copies directory trees into staging directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type TreeMerger interface {
	// Merge copies every file under src into dst, overwriting. It reports skipped=true
	// when src or dst is not a directory, in which case nothing is copied.
	Merge(ctx context.Context, src, dst string) (skipped bool, err error)

	// CopyFile copies the single file src to dst, creating parent directories.
	CopyFile(src, dst string) error
}

// Archiver packages a directory into a single archive.
type Archiver interface {
	// Build writes the tree rooted at src to archivePath.
	Build(ctx context.Context, src, archivePath string) error
}

// InputResolver expands file patterns.
type InputResolver interface {
	// ResolveInputs resolves the given patterns, relative to root, to concrete file paths.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
