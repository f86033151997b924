package domain

// FetchResult describes one asset handed to the downloader.
type FetchResult struct {
	Path string
	// Cached is true when the destination already existed and nothing was transferred.
	Cached bool
}

// FetchReport summarises one batch of asset downloads.
// Counts are informational; failures never fail the batch.
type FetchReport struct {
	ModsDir     string
	Fetched     int
	Cached      int
	Excluded    int
	Unavailable int
	Failed      int
}

// Dispatched returns the number of assets handed to the downloader.
func (r FetchReport) Dispatched() int {
	return r.Fetched + r.Cached + r.Unavailable + r.Failed
}

// BuildResult lists the artifacts of a finished build.
type BuildResult struct {
	ServerArchive string
	ClientArchive string
	Report        FetchReport
}
