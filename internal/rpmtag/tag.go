package rpmtag

// Tag is a numeric tag code. The header section and the signature section
// number their tags independently, so one code can name different tags in
// the two sections (e.g. Name and SigSize are both 1000).
type Tag int32

// Header section tags, in the order CanonicalHeaderOrder lists them.
const (
	HeaderImmutable  Tag = 63
	HeaderI18NTable  Tag = 100
	Name             Tag = 1000
	Version          Tag = 1001
	Release          Tag = 1002
	Summary          Tag = 1004
	Description      Tag = 1005
	BuildTime        Tag = 1006
	BuildHost        Tag = 1007
	Size             Tag = 1009
	Distribution     Tag = 1010
	Vendor           Tag = 1011
	License          Tag = 1014
	Group            Tag = 1016
	URL              Tag = 1020
	OS               Tag = 1021
	Arch             Tag = 1022
	FileSizes        Tag = 1028
	FileModes        Tag = 1030
	FileRDevs        Tag = 1033
	FileMTimes       Tag = 1034
	FileDigests      Tag = 1035
	FileLinkTos      Tag = 1036
	FileFlags        Tag = 1037
	FileUserName     Tag = 1039
	FileGroupName    Tag = 1040
	SourceRPM        Tag = 1044
	FileVerifyFlags  Tag = 1045
	ProvideName      Tag = 1047
	RequireFlags     Tag = 1048
	RequireName      Tag = 1049
	RequireVersion   Tag = 1050
	RPMVersion       Tag = 1064
	ChangelogTime    Tag = 1080
	ChangelogName    Tag = 1081
	ChangelogText    Tag = 1082
	PostInProg       Tag = 1086
	PostUnProg       Tag = 1088
	Cookie           Tag = 1094
	FileDevices      Tag = 1095
	FileInodes       Tag = 1096
	FileLangs        Tag = 1097
	ProvideFlags     Tag = 1112
	ProvideVersion   Tag = 1113
	DirIndexes       Tag = 1116
	BaseNames        Tag = 1117
	DirNames         Tag = 1118
	OptFlags         Tag = 1122
	DistURL          Tag = 1123
	PayloadFormat    Tag = 1124
	PayloadCompressor Tag = 1125
	PayloadFlags     Tag = 1126
	Platform         Tag = 1132
	FileColors       Tag = 1140
	FileClass        Tag = 1141
	ClassDict        Tag = 1142
	FileDependsX     Tag = 1143
	FileDependsN     Tag = 1144
	DependsDict      Tag = 1145
	SourcePkgID      Tag = 1146
	FileDigestAlgo   Tag = 5011

	// Scriptlet tags. Not part of the spec's literal canonical sequence;
	// appended after it rather than inserted, per that sequence's own
	// "extend only by appending" rule.
	PreIn     Tag = 1023
	PostIn    Tag = 1024
	PreUn     Tag = 1025
	PostUn    Tag = 1026
	PreInProg Tag = 1085
	PreUnProg Tag = 1087
)

// CanonicalHeaderOrder is the sequence in which tags must be emitted in the
// header section when present. The assembler populates a header TagStore by
// Set-ing tags in exactly this order; extending it means appending, never
// reordering.
var CanonicalHeaderOrder = []Tag{
	HeaderImmutable, HeaderI18NTable, Name, Version, Release, Summary,
	Description, BuildTime, BuildHost, Size, Distribution, Vendor, License,
	Group, URL, OS, Arch, FileSizes, FileModes, FileRDevs, FileMTimes,
	FileDigests, FileLinkTos, FileFlags, FileUserName, FileGroupName,
	SourceRPM, FileVerifyFlags, ProvideName, RequireFlags, RequireName,
	RequireVersion, RPMVersion, ChangelogTime, ChangelogName, ChangelogText,
	PostInProg, PostUnProg, Cookie, FileDevices, FileInodes, FileLangs,
	ProvideFlags, ProvideVersion, DirIndexes, BaseNames, DirNames, OptFlags,
	DistURL, PayloadFormat, PayloadCompressor, PayloadFlags, Platform,
	FileColors, FileClass, ClassDict, FileDependsX, FileDependsN,
	DependsDict, SourcePkgID, FileDigestAlgo,
	PreInProg, PreIn, PostIn, PreUnProg, PreUn, PostUn,
}

// Signature section tags. The reference implementation leaves their
// canonical order unconstrained; this package emits them in ascending
// numeric order instead (see SigOrder), which is deterministic and
// reproducible without being a discovered requirement.
const (
	SigHeaderImmutable Tag = 62
	SigSize            Tag = 1000
	SigPGP             Tag = 1002
	SigMD5             Tag = 1004
	SigGPG             Tag = 1005
	SigPayloadSize     Tag = 1007
	SigDSA             Tag = 267
	SigRSA             Tag = 268
	SigSHA1            Tag = 269
	SigSHA256          Tag = 273
)

// SigOrder returns tags sorted into ascending numeric order, the
// deterministic ordering this package uses for the signature section.
func SigOrder(tags []Tag) []Tag {
	out := make([]Tag, len(tags))
	copy(out, tags)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
