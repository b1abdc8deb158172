package rpmpkg

import "fmt"

// Identity is a package's name/version/release/arch/os quadruple — the
// minimum needed to form its NVR and lead.
type Identity struct {
	Name    string
	Version string
	Release string
	Arch    string // e.g. "x86_64", "noarch"
	OS      string // e.g. "linux"
}

// NVR renders the canonical "name-version-release" string used as the
// lead's name field.
func (id Identity) NVR() string {
	return fmt.Sprintf("%s-%s-%s", id.Name, id.Version, id.Release)
}

// Changelog is one entry in the package's change history.
type Changelog struct {
	Time int64 // seconds since epoch
	Name string
	Text string
}

// Scripts holds the optional shell fragments run by the package manager
// around install/uninstall.
type Scripts struct {
	PreIn   string
	PostIn  string
	PreUn   string
	PostUn  string
}

// Dependency is one capability relation: Name optionally qualified by a
// version comparison (e.g. Name="libfoo", Relation=">=", Version="1.2").
// Relation is empty for an unqualified dependency.
type Dependency struct {
	Name     string
	Relation string // one of "", "<", "<=", "=", "==", ">=", ">"
	Version  string
}

// Metadata holds the optional descriptive and relational fields the
// assembler folds into the header section beyond bare identity.
type Metadata struct {
	Summary      string
	Description  string
	License      string
	Vendor       string
	URL          string
	Group        string
	Distribution string
	BuildHost    string
	Changelog    []Changelog
	Scripts      Scripts

	Provides []Dependency
	Requires []Dependency

	// FileDigestAlgo selects the per-file digest algorithm recorded in
	// FILEDIGESTALGO: 8 for SHA256, 1 for MD5. Zero defaults to MD5,
	// matching what rpm assumes of a package with no FILEDIGESTALGO tag.
	FileDigestAlgo int32
}
