package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/core/domain"
)

const sampleManifest = `{
  "minecraft": {
    "version": "1.20.1",
    "modLoaders": [{"id": "forge-47.4.0", "primary": true}]
  },
  "manifestType": "minecraftModpack",
  "manifestVersion": 1,
  "name": "X",
  "version": "1",
  "author": "Y",
  "files": [{"projectID": 238222, "fileID": 7014291, "required": true}],
  "overrides": "overrides"
}`

func TestManifest_Unmarshal(t *testing.T) {
	var m domain.Manifest
	require.NoError(t, json.Unmarshal([]byte(sampleManifest), &m))

	assert.Equal(t, "X", m.Name)
	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "Y", m.Author)
	assert.Equal(t, "overrides", m.Overrides)
	assert.Equal(t, "1.20.1", m.Minecraft.Version)
	assert.Equal(t, []domain.AssetRef{{ProjectID: 238222, FileID: 7014291, Required: true}}, m.Files)

	loader, ok := m.FirstLoader()
	require.True(t, ok)
	assert.Equal(t, "forge-47.4.0", loader.ID)
}

func TestManifest_WithInfo_PreservesFields(t *testing.T) {
	var m domain.Manifest
	require.NoError(t, json.Unmarshal([]byte(sampleManifest), &m))

	rewritten := m.WithInfo(domain.PackInfo{Name: "Z", Version: "2", Author: "W"})
	data, err := json.Marshal(rewritten)
	require.NoError(t, err)

	var before, after map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleManifest), &before))
	require.NoError(t, json.Unmarshal(data, &after))

	assert.Equal(t, "Z", after["name"])
	assert.Equal(t, "2", after["version"])
	assert.Equal(t, "W", after["author"])
	for _, key := range []string{"minecraft", "overrides", "files", "manifestType", "manifestVersion"} {
		assert.Equal(t, before[key], after[key], "field %s changed", key)
	}

	// The source manifest is left untouched.
	assert.Equal(t, "X", m.Name)
}

func TestManifest_Encode_Golden(t *testing.T) {
	var m domain.Manifest
	require.NoError(t, json.Unmarshal([]byte(sampleManifest), &m))

	out, err := m.WithInfo(domain.PackInfo{Name: "Z", Version: "2", Author: "W"}).Encode()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "client_manifest", out)
}

func TestManifest_MarshalConstructed(t *testing.T) {
	m := domain.Manifest{
		Name:      "Pack",
		Version:   "0.1.0",
		Author:    "someone",
		Files:     []domain.AssetRef{{ProjectID: 1, FileID: 2}},
		Minecraft: domain.Platform{Version: "1.21.1", ModLoaders: []domain.ModLoader{{ID: "neoforge-21.1.77", Primary: true}}},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded domain.Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m.Files, decoded.Files)
	assert.Equal(t, m.Minecraft, decoded.Minecraft)
	assert.Equal(t, "overrides", decoded.OverridesDir())
}

func TestManifest_FirstLoader_Empty(t *testing.T) {
	_, ok := domain.Manifest{}.FirstLoader()
	assert.False(t, ok)
}
