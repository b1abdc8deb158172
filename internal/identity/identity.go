// Package identity resolves a package's name/version/release from CLI
// flags or a YAML build manifest into the plain rpmpkg.Identity/Metadata
// values the assembler consumes.
package identity

import (
	"fmt"
	"os"
	"runtime"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/gorpm/rpmpack/internal/rpmpkg"
)

// goarchToRPM maps Go's GOARCH values to the architecture names rpm
// expects in the header ARCH tag. An unmapped GOARCH resolves to "noarch"
// rather than guessing.
var goarchToRPM = map[string]string{
	"amd64": "x86_64",
	"386":   "i386",
	"arm64": "aarch64",
	"arm":   "armhfp",
}

// detectArch returns the host's rpm architecture name, or "noarch" if
// GOARCH has no known rpm equivalent.
func detectArch() string {
	if rpmArch, ok := goarchToRPM[runtime.GOARCH]; ok {
		return rpmArch
	}
	return "noarch"
}

// Manifest is the optional YAML descriptor a build can supply instead of
// individual CLI flags: name, version, release, arch, and the subset of
// Metadata fields worth externalizing.
type Manifest struct {
	Name          string   `yaml:"name"`
	Version       string   `yaml:"version"`
	Release       string   `yaml:"release"`
	Arch          string   `yaml:"arch"`
	OS            string   `yaml:"os"`
	Summary       string   `yaml:"summary"`
	Description   string   `yaml:"description"`
	License       string   `yaml:"license"`
	Vendor        string   `yaml:"vendor"`
	URL           string   `yaml:"url"`
	Group         string   `yaml:"group"`
	Distribution  string   `yaml:"distribution"`
	Provides      []string `yaml:"provides"`
	Requires      []string `yaml:"requires"`
	PreInstall    string   `yaml:"pre_install"`
	PostInstall   string   `yaml:"post_install"`
	PreUninstall  string   `yaml:"pre_uninstall"`
	PostUninstall string   `yaml:"post_uninstall"`
}

// LoadManifest reads and parses a YAML build manifest from path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("identity: reading manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("identity: parsing manifest %q: %w", path, err)
	}
	return m, nil
}

// NormalizeVersion validates a version string using semver-style
// comparison rules and returns its canonical dotted-segment form (no
// leading "v", no prerelease/metadata suffix) — the form reference rpm
// accepts in the header VERSION tag, which forbids "-" and "~".
func NormalizeVersion(raw string) (string, error) {
	v, err := goversion.NewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("identity: invalid version %q: %w", raw, err)
	}
	segments := v.Segments()
	out := fmt.Sprintf("%d", segments[0])
	for _, s := range segments[1:] {
		out += fmt.Sprintf(".%d", s)
	}
	return out, nil
}

// Resolve builds an rpmpkg.Identity from a manifest, applying fallback
// defaults for Arch/OS and normalizing Version via NormalizeVersion.
func Resolve(m Manifest) (rpmpkg.Identity, error) {
	version, err := NormalizeVersion(m.Version)
	if err != nil {
		return rpmpkg.Identity{}, err
	}
	release := m.Release
	if release == "" {
		release = "1"
	}
	arch := m.Arch
	if arch == "" {
		arch = detectArch()
	}
	os := m.OS
	if os == "" {
		os = "linux"
	}
	return rpmpkg.Identity{
		Name:    m.Name,
		Version: version,
		Release: release,
		Arch:    arch,
		OS:      os,
	}, nil
}

// ResolveMetadata extracts the Metadata fields carried directly in m. It
// does not parse Provides/Requires relation strings — that is
// internal/deprel's job.
func ResolveMetadata(m Manifest) rpmpkg.Metadata {
	return rpmpkg.Metadata{
		Summary:      m.Summary,
		Description:  m.Description,
		License:      m.License,
		Vendor:       m.Vendor,
		URL:          m.URL,
		Group:        m.Group,
		Distribution: m.Distribution,
		Scripts: rpmpkg.Scripts{
			PreIn:  m.PreInstall,
			PostIn: m.PostInstall,
			PreUn:  m.PreUninstall,
			PostUn: m.PostUninstall,
		},
	}
}
