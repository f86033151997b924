package domain

// PackInfo is the pack identity written into archives and the client manifest.
type PackInfo struct {
	Name    string
	Version string
	Author  string
}

// BuildConfig is the parsed build file. Paths are absolute once loaded.
type BuildConfig struct {
	Info PackInfo

	// ManifestPath points to the CurseForge manifest.json.
	ManifestPath string

	// Overrides lists directories merged into both staging trees.
	Overrides []string

	// ChangedConfigs lists files (glob patterns) copied verbatim into both staging trees,
	// relative to BaseDir.
	ChangedConfigs []string

	// ClientsideIDs extends DefaultExclusions.
	ClientsideIDs []uint32

	// BaseDir is the directory of the build file.
	BaseDir string
}

// Exclusions returns the server exclusion set for this build.
func (c *BuildConfig) Exclusions() ExclusionSet {
	return NewExclusionSet(DefaultExclusions, c.ClientsideIDs)
}
