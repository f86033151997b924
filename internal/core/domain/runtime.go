package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RuntimeKind identifies a mod loader family.
type RuntimeKind int

const (
	// RuntimeForge is the Forge loader.
	RuntimeForge RuntimeKind = iota
	// RuntimeNeoForge is the NeoForge loader.
	RuntimeNeoForge
	// RuntimeFabric is the Fabric loader. It has no server installer artifact.
	RuntimeFabric
)

// String returns the loader name as it appears in loader identifiers.
func (k RuntimeKind) String() string {
	switch k {
	case RuntimeForge:
		return "forge"
	case RuntimeNeoForge:
		return "neoforge"
	case RuntimeFabric:
		return "fabric"
	default:
		return "unknown"
	}
}

// ParseRuntimeKind maps a loader name to its kind.
func ParseRuntimeKind(name string) (RuntimeKind, error) {
	switch name {
	case "forge":
		return RuntimeForge, nil
	case "neoforge":
		return RuntimeNeoForge, nil
	case "fabric":
		return RuntimeFabric, nil
	default:
		return 0, Fail(ErrUnknownRuntime, "kind", name)
	}
}

// RuntimeSpec pins a loader build to a game version.
type RuntimeSpec struct {
	PlatformVersion string
	Kind            RuntimeKind
	Version         string
}

// ParseRuntimeSpec splits a compound loader id such as "forge-47.4.0" at its first '-'.
func ParseRuntimeSpec(platformVersion, loaderID string) (RuntimeSpec, error) {
	kindName, version, ok := strings.Cut(loaderID, "-")
	if !ok || kindName == "" || version == "" {
		return RuntimeSpec{}, Fail(ErrRuntimeFormat, "loader_id", loaderID)
	}

	kind, err := ParseRuntimeKind(kindName)
	if err != nil {
		return RuntimeSpec{}, zerr.With(err, "loader_id", loaderID)
	}

	return RuntimeSpec{
		PlatformVersion: platformVersion,
		Kind:            kind,
		Version:         version,
	}, nil
}

// InstallerFileName is the file name the server installer is stored under,
// "<kind>-<version>-<platform>-server_installer.jar".
func (s RuntimeSpec) InstallerFileName() string {
	return s.Kind.String() + "-" + s.Version + "-" + s.PlatformVersion + "-server_installer.jar"
}
