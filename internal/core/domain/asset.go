package domain

import (
	"maps"
	"slices"
	"strconv"
)

// AssetRef identifies one downloadable file of a catalog project.
type AssetRef struct {
	ProjectID uint32 `json:"projectID"`
	FileID    uint32 `json:"fileID"`
	Required  bool   `json:"required"`
}

// Key returns a stable textual key for the asset, "projectID:fileID".
func (a AssetRef) Key() string {
	return strconv.FormatUint(uint64(a.ProjectID), 10) + ":" + strconv.FormatUint(uint64(a.FileID), 10)
}

// RemoteFile is the catalog's answer for an asset: where to fetch it and what to call it.
type RemoteFile struct {
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
}

// DefaultExclusions lists client-only projects (shader loaders, renderers, minimaps, input tweaks)
// that are never fetched for the server pack.
var DefaultExclusions = []uint32{
	394468, // Sodium
	455508, // Iris Shaders
	908741, // Embeddium
	581495, // Oculus
	263420, // Xaero's Minimap
	317780, // Xaero's World Map
	60089,  // Mouse Tweaks
}

// ExclusionSet holds project ids that must never appear in the server pack.
// It is read-only once built.
type ExclusionSet struct {
	ids map[uint32]struct{}
}

// NewExclusionSet merges the given id lists into one set.
func NewExclusionSet(lists ...[]uint32) ExclusionSet {
	ids := make(map[uint32]struct{})
	for _, list := range lists {
		for _, id := range list {
			ids[id] = struct{}{}
		}
	}
	return ExclusionSet{ids: ids}
}

// Contains reports whether the project id is excluded.
func (s ExclusionSet) Contains(projectID uint32) bool {
	_, ok := s.ids[projectID]
	return ok
}

// Len returns the number of excluded projects.
func (s ExclusionSet) Len() int {
	return len(s.ids)
}

// IDs returns the excluded project ids in ascending order.
func (s ExclusionSet) IDs() []uint32 {
	return slices.Sorted(maps.Keys(s.ids))
}
