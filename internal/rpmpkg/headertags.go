package rpmpkg

import (
	"github.com/gorpm/rpmpack/internal/digest"
	"github.com/gorpm/rpmpack/internal/rpmtag"
)

const rpmlibSense int32 = 0x01000000 // RPMSENSE_RPMLIB

// Per-file digest algorithm codes stored in FILEDIGESTALGO, matching the
// values rpm itself assigns (pgp hash algorithm numbering).
const (
	fileDigestAlgoMD5    int32 = 1
	fileDigestAlgoSHA256 int32 = 8
)

// resolveFileDigestAlgo applies the zero-value default: MD5, matching what
// rpm assumes when a package carries no FILEDIGESTALGO tag at all.
func resolveFileDigestAlgo(requested int32) int32 {
	if requested == 0 {
		return fileDigestAlgoMD5
	}
	return requested
}

// fileDigestHex computes the per-file FILEDIGESTS entry for content using
// whichever algorithm algo selects.
func fileDigestHex(algo int32, content []byte) string {
	if algo == fileDigestAlgoSHA256 {
		return digest.SHA256Hex(content)
	}
	return digest.MD5Hex(content)
}

// rpmlibRequires are the rpmlib capability requirements every package
// produced by this codec depends on, given its on-disk layout.
var rpmlibRequires = []struct {
	name, version string
}{
	{"rpmlib(PayloadFilesHavePrefix)", "4.0-1"},
	{"rpmlib(CompressedFileNames)", "3.0.4-1"},
	{"rpmlib(FileDigests)", "4.6.0-1"},
	{"rpmlib(PayloadIsXz)", "5.2-1"},
}

// buildHeader assembles the header TagStore in canonical order from the
// package identity, optional metadata, and the file statistics gathered
// while writing the CPIO archive.
func buildHeader(id Identity, meta Metadata, buildTime int64, stats fileStats,
	payloadDigest string, payloadDigestAlgo int32) (*rpmtag.TagStore, error) {

	h := rpmtag.NewTagStore()
	set := func(tag rpmtag.Tag, v rpmtag.Value) error { return h.Set(tag, v) }

	if err := h.SetImmutableRegion(rpmtag.HeaderImmutable); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Name, rpmtag.StringValue(id.Name)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Version, rpmtag.StringValue(id.Version)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Release, rpmtag.StringValue(id.Release)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Summary, rpmtag.StringValue(meta.Summary)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Description, rpmtag.StringValue(meta.Description)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.BuildTime, rpmtag.Int32Value([]int32{int32(buildTime)})); err != nil {
		return nil, err
	}
	if meta.BuildHost != "" {
		if err := set(rpmtag.BuildHost, rpmtag.StringValue(meta.BuildHost)); err != nil {
			return nil, err
		}
	}
	if err := set(rpmtag.Size, rpmtag.Int32Value([]int32{int32(stats.totalSize)})); err != nil {
		return nil, err
	}
	if meta.Distribution != "" {
		if err := set(rpmtag.Distribution, rpmtag.StringValue(meta.Distribution)); err != nil {
			return nil, err
		}
	}
	if meta.Vendor != "" {
		if err := set(rpmtag.Vendor, rpmtag.StringValue(meta.Vendor)); err != nil {
			return nil, err
		}
	}
	if err := set(rpmtag.License, rpmtag.StringValue(meta.License)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Group, rpmtag.StringValue(orDefault(meta.Group, "Applications/System"))); err != nil {
		return nil, err
	}
	if meta.URL != "" {
		if err := set(rpmtag.URL, rpmtag.StringValue(meta.URL)); err != nil {
			return nil, err
		}
	}
	if err := set(rpmtag.OS, rpmtag.StringValue(orDefault(id.OS, "linux"))); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Arch, rpmtag.StringValue(id.Arch)); err != nil {
		return nil, err
	}

	if len(stats.fileSizes) > 0 {
		if err := set(rpmtag.FileSizes, rpmtag.Int32Value(stats.fileSizes)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileModes, rpmtag.Int16Value(stats.fileModes)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileRDevs, rpmtag.Int16Value(stats.fileRDevs)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileMTimes, rpmtag.Int32Value(stats.fileMTimes)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileDigests, rpmtag.StringArrayValue(stats.fileDigests)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileLinkTos, rpmtag.StringArrayValue(stats.fileLinkTos)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileFlags, rpmtag.Int32Value(stats.fileFlags)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileUserName, rpmtag.StringArrayValue(stats.fileUserNames)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileGroupName, rpmtag.StringArrayValue(stats.fileGroupNames)); err != nil {
			return nil, err
		}
	}

	provideNames := []string{id.Name}
	provideFlags := []int32{0x08} // RPMSENSE_EQUAL
	provideVersions := []string{id.Version + "-" + id.Release}
	for _, d := range meta.Provides {
		provideNames = append(provideNames, d.Name)
		provideFlags = append(provideFlags, senseFlag(d.Relation))
		provideVersions = append(provideVersions, d.Version)
	}
	if err := set(rpmtag.ProvideName, rpmtag.StringArrayValue(provideNames)); err != nil {
		return nil, err
	}

	reqNames := []string{}
	reqFlags := []int32{}
	reqVersions := []string{}
	for _, lib := range rpmlibRequires {
		reqNames = append(reqNames, lib.name)
		reqFlags = append(reqFlags, rpmlibSense|0x08|0x04) // RPMLIB | EQUAL | GREATER
		reqVersions = append(reqVersions, lib.version)
	}
	for _, d := range meta.Requires {
		reqNames = append(reqNames, d.Name)
		reqFlags = append(reqFlags, senseFlag(d.Relation))
		reqVersions = append(reqVersions, d.Version)
	}
	if err := set(rpmtag.RequireFlags, rpmtag.Int32Value(reqFlags)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.RequireName, rpmtag.StringArrayValue(reqNames)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.RequireVersion, rpmtag.StringArrayValue(reqVersions)); err != nil {
		return nil, err
	}

	if err := set(rpmtag.RPMVersion, rpmtag.StringValue("4.14.0")); err != nil {
		return nil, err
	}

	if len(meta.Changelog) > 0 {
		var times []int32
		var names, texts []string
		for _, c := range meta.Changelog {
			times = append(times, int32(c.Time))
			names = append(names, c.Name)
			texts = append(texts, c.Text)
		}
		if err := set(rpmtag.ChangelogTime, rpmtag.Int32Value(times)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.ChangelogName, rpmtag.StringArrayValue(names)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.ChangelogText, rpmtag.StringArrayValue(texts)); err != nil {
			return nil, err
		}
	}

	if meta.Scripts.PostIn != "" {
		if err := set(rpmtag.PostInProg, rpmtag.StringValue("/bin/sh")); err != nil {
			return nil, err
		}
	}
	if meta.Scripts.PostUn != "" {
		if err := set(rpmtag.PostUnProg, rpmtag.StringValue("/bin/sh")); err != nil {
			return nil, err
		}
	}

	if len(stats.fileSizes) > 0 {
		if err := set(rpmtag.FileDevices, rpmtag.Int32Value(stats.fileDevices)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileInodes, rpmtag.Int32Value(stats.fileInodes)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.FileLangs, rpmtag.StringArrayValue(stats.fileLangs)); err != nil {
			return nil, err
		}
	}

	if err := set(rpmtag.ProvideFlags, rpmtag.Int32Value(provideFlags)); err != nil {
		return nil, err
	}
	if err := set(rpmtag.ProvideVersion, rpmtag.StringArrayValue(provideVersions)); err != nil {
		return nil, err
	}

	if len(stats.dirIndexes) > 0 {
		if err := set(rpmtag.DirIndexes, rpmtag.Int32Value(stats.dirIndexes)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.BaseNames, rpmtag.StringArrayValue(stats.baseNames)); err != nil {
			return nil, err
		}
		if err := set(rpmtag.DirNames, rpmtag.StringArrayValue(stats.dirNames)); err != nil {
			return nil, err
		}
	}

	if err := set(rpmtag.PayloadFormat, rpmtag.StringValue("cpio")); err != nil {
		return nil, err
	}
	if err := set(rpmtag.PayloadCompressor, rpmtag.StringValue("xz")); err != nil {
		return nil, err
	}
	if err := set(rpmtag.PayloadFlags, rpmtag.StringValue("2")); err != nil {
		return nil, err
	}
	if err := set(rpmtag.Platform, rpmtag.StringValue(id.Arch+"-"+orDefault(id.OS, "linux"))); err != nil {
		return nil, err
	}

	if len(stats.fileColors) > 0 {
		if err := set(rpmtag.FileColors, rpmtag.Int32Value(stats.fileColors)); err != nil {
			return nil, err
		}
	}

	algo := resolveFileDigestAlgo(payloadDigestAlgo)
	if err := set(rpmtag.FileDigestAlgo, rpmtag.Int32Value([]int32{algo})); err != nil {
		return nil, err
	}

	if meta.Scripts.PreIn != "" {
		if err := set(rpmtag.PreInProg, rpmtag.StringValue("/bin/sh")); err != nil {
			return nil, err
		}
		if err := set(rpmtag.PreIn, rpmtag.StringValue(meta.Scripts.PreIn)); err != nil {
			return nil, err
		}
	}
	if meta.Scripts.PostIn != "" {
		if err := set(rpmtag.PostIn, rpmtag.StringValue(meta.Scripts.PostIn)); err != nil {
			return nil, err
		}
	}
	if meta.Scripts.PreUn != "" {
		if err := set(rpmtag.PreUnProg, rpmtag.StringValue("/bin/sh")); err != nil {
			return nil, err
		}
		if err := set(rpmtag.PreUn, rpmtag.StringValue(meta.Scripts.PreUn)); err != nil {
			return nil, err
		}
	}
	if meta.Scripts.PostUn != "" {
		if err := set(rpmtag.PostUn, rpmtag.StringValue(meta.Scripts.PostUn)); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func senseFlag(relation string) int32 {
	switch relation {
	case ">":
		return 0x04
	case ">=":
		return 0x04 | 0x08
	case "<":
		return 0x02
	case "<=":
		return 0x02 | 0x08
	case "=", "==":
		return 0x08
	default:
		return 0
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
