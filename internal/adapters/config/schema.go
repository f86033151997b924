package config

// buildFile is the on-disk shape of packsmith.toml / packsmith.yaml.
type buildFile struct {
	Info           infoDTO  `toml:"info"            yaml:"info"`
	Manifest       string   `toml:"manifest"        yaml:"manifest"`
	Overrides      []string `toml:"overrides"       yaml:"overrides"`
	ChangedConfigs []string `toml:"changed_configs" yaml:"changed_configs"`
	ClientsideID   []uint32 `toml:"clientside_id"   yaml:"clientside_id"`
}

type infoDTO struct {
	Name    string `toml:"name"    yaml:"name"`
	Version string `toml:"version" yaml:"version"`
	Author  string `toml:"author"  yaml:"author"`
}

// defaultOverrides is used when the build file does not list any override directory.
var defaultOverrides = []string{"overrides"}
