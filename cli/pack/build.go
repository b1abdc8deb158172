package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/gorpm/rpmpack/internal/deprel"
	"github.com/gorpm/rpmpack/internal/identity"
	"github.com/gorpm/rpmpack/internal/rpmpkg"
)

// BuildOptions carries the flags/manifest values a build command resolves
// before calling Build.
type BuildOptions struct {
	SourceDir    string
	ManifestPath string
	Name         string
	Version      string
	Release      string
	Arch         string
	OS           string
	BuildTime    int64
	Provides     []string
	Requires     []string

	// ExtraFiles maps an on-disk source path to the destination path,
	// relative to the package's install prefix, it should be staged at
	// before walking SourceDir — for bundling a binary or directory that
	// doesn't already live under SourceDir.
	ExtraFiles map[string]string
}

// Build resolves opts into an rpmpkg.Options and runs the assembler over
// a directory-backed FileSource rooted at opts.SourceDir, writing the
// result to out.
func Build(opts BuildOptions, out *os.File) error {
	m := identity.Manifest{
		Name:    opts.Name,
		Version: opts.Version,
		Release: opts.Release,
		Arch:    opts.Arch,
		OS:      opts.OS,
	}
	if opts.ManifestPath != "" {
		loaded, err := identity.LoadManifest(opts.ManifestPath)
		if err != nil {
			return err
		}
		m = mergeManifest(loaded, m)
	}

	id, err := identity.Resolve(m)
	if err != nil {
		return err
	}
	meta := identity.ResolveMetadata(m)

	provides, err := deprel.Parse(append(m.Provides, opts.Provides...))
	if err != nil {
		return fmt.Errorf("pack: parsing provides: %w", err)
	}
	requires, err := deprel.Parse(append(m.Requires, opts.Requires...))
	if err != nil {
		return fmt.Errorf("pack: parsing requires: %w", err)
	}
	meta.Provides = toDependencies(provides)
	meta.Requires = toDependencies(requires)

	root, cleanup, err := stageBuildRoot(opts.SourceDir, opts.ExtraFiles)
	if err != nil {
		return err
	}
	defer cleanup()

	source := DirSource{Root: root}

	return rpmpkg.Assemble(source, rpmpkg.Options{
		Identity:  id,
		Metadata:  meta,
		BuildTime: opts.BuildTime,
	}, out)
}

// stageBuildRoot assembles the directory DirSource walks: a copy of
// sourceDir with each entry of extra materialized at its mapped
// destination, so ExtraFiles content is included in the package without
// mutating sourceDir itself.
func stageBuildRoot(sourceDir string, extra map[string]string) (string, func(), error) {
	if len(extra) == 0 {
		return sourceDir, func() {}, nil
	}

	tmp, err := os.MkdirTemp("", "rpmpack-build-root-")
	if err != nil {
		return "", nil, fmt.Errorf("pack: staging build root: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmp) }

	if err := copy.Copy(sourceDir, tmp); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("pack: staging %q: %w", sourceDir, err)
	}
	for src, dest := range extra {
		target := filepath.Join(tmp, dest)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			cleanup()
			return "", nil, fmt.Errorf("pack: staging %q: %w", dest, err)
		}
		if err := copy.Copy(src, target); err != nil {
			cleanup()
			return "", nil, fmt.Errorf("pack: staging %q: %w", src, err)
		}
	}
	return tmp, cleanup, nil
}

// mergeManifest fills the zero-valued identity fields (Name, Version,
// Release, Arch, OS) of override from base, giving command-line flags
// priority over the manifest file. All other fields are taken from base.
func mergeManifest(base, override identity.Manifest) identity.Manifest {
	if override.Name == "" {
		override.Name = base.Name
	}
	if override.Version == "" {
		override.Version = base.Version
	}
	if override.Release == "" {
		override.Release = base.Release
	}
	if override.Arch == "" {
		override.Arch = base.Arch
	}
	if override.OS == "" {
		override.OS = base.OS
	}
	override.Summary = base.Summary
	override.Description = base.Description
	override.License = base.License
	override.Vendor = base.Vendor
	override.URL = base.URL
	override.Group = base.Group
	override.Distribution = base.Distribution
	override.Provides = base.Provides
	override.Requires = base.Requires
	override.PreInstall = base.PreInstall
	override.PostInstall = base.PostInstall
	override.PreUninstall = base.PreUninstall
	override.PostUninstall = base.PostUninstall
	return override
}

func toDependencies(relations []deprel.Relation) []rpmpkg.Dependency {
	out := make([]rpmpkg.Dependency, 0, len(relations))
	for _, r := range relations {
		out = append(out, rpmpkg.Dependency{Name: r.Name, Relation: r.Relation, Version: r.Version})
	}
	return out
}
