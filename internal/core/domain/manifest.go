package domain

import (
	"encoding/json"
	"maps"
)

// ModLoader is one runtime loader entry of the manifest, e.g. {"id": "forge-47.4.0"}.
type ModLoader struct {
	ID      string `json:"id"`
	Primary bool   `json:"primary"`
}

// Platform describes the game version and the loaders it runs on.
type Platform struct {
	Version    string      `json:"version"`
	ModLoaders []ModLoader `json:"modLoaders"`
}

// Manifest is a CurseForge-style pack manifest.
//
// Only name, version and author are ever rewritten. Every other field, including
// ones this type does not model, is carried through encoding unchanged.
type Manifest struct {
	Name      string
	Version   string
	Author    string
	Files     []AssetRef
	Minecraft Platform
	Overrides string

	raw map[string]json.RawMessage
}

type manifestFields struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Author    string     `json:"author"`
	Files     []AssetRef `json:"files"`
	Minecraft Platform   `json:"minecraft"`
	Overrides string     `json:"overrides"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var fields manifestFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*m = Manifest{
		Name:      fields.Name,
		Version:   fields.Version,
		Author:    fields.Author,
		Files:     fields.Files,
		Minecraft: fields.Minecraft,
		Overrides: fields.Overrides,
		raw:       raw,
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
// Fields read from a document keep their original structure; name, version and
// author always come from the struct.
func (m Manifest) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.raw)+6)
	maps.Copy(out, m.raw)

	typed := map[string]any{
		"name":    m.Name,
		"version": m.Version,
		"author":  m.Author,
	}
	if m.raw == nil {
		typed["files"] = m.Files
		typed["minecraft"] = m.Minecraft
		typed["overrides"] = m.Overrides
	}

	for key, value := range typed {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[key] = encoded
	}

	return json.Marshal(out)
}

// Encode renders the manifest as indented JSON terminated by a newline.
func (m Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WithInfo returns a copy of the manifest carrying the pack identity from info.
func (m Manifest) WithInfo(info PackInfo) Manifest {
	m.Name = info.Name
	m.Version = info.Version
	m.Author = info.Author
	return m
}

// FirstLoader returns the first declared loader entry. Later entries are ignored.
func (m Manifest) FirstLoader() (ModLoader, bool) {
	if len(m.Minecraft.ModLoaders) == 0 {
		return ModLoader{}, false
	}
	return m.Minecraft.ModLoaders[0], true
}

// OverridesDir returns the folder name client packs keep overrides under.
func (m Manifest) OverridesDir() string {
	if m.Overrides == "" {
		return "overrides"
	}
	return m.Overrides
}
